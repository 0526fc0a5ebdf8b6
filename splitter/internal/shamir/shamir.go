// Copyright 2024 the Splitmonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package shamir implements t-of-n [Shamir Secret Sharing] (SSS) on
// arbitrary-size secrets over GF(2^8). SSS is based on the Lagrange
// interpolation theorem, which states that `k` points are enough to uniquely
// determine a polynomial of degree less than or equal to `k - 1`.
//
// Each byte of the secret is shared through its own independent random
// polynomial, so a share is one evaluation point per secret byte, all taken at
// the same x coordinate.
//
// This scheme is secure under the following assumptions:
//   - The scheme requires a trusted dealer to generate the shares. Participants
//     must trust the dealer with access to the secret and to properly generate
//     the shares.
//   - The scheme assumes a passive adversary which can observe (n - t) shares
//     without being able to reconstruct the secret.
//
// [Shamir Secret Sharing]: https://web.mit.edu/6.857/OldStuff/Fall03/ref/Shamir-HowToShareAsecrets.pdf
package shamir

import (
	"fmt"

	"github.com/splitmonic/splitmonic/splitter/internal/gf256"
)

// Share represents one share of a shared secret.
type Share struct {
	// Value holds one polynomial evaluation per secret byte.
	Value []byte
	// X is the coordinate the polynomials were evaluated at, in 1..255.
	X int
}

// SplitSecret splits a secret into numShares shares where threshold or more
// shares can be combined to reconstruct the original secret. Shares are
// returned in increasing X order, X running from 1 to numShares.
func SplitSecret(secret []byte, threshold, numShares int) ([]Share, error) {
	if err := validateSplitInput(secret, threshold, numShares); err != nil {
		return nil, err
	}

	shares := make([]Share, numShares)
	for i := range shares {
		shares[i].X = i + 1
		shares[i].Value = make([]byte, 0, len(secret))
	}

	// For each secret byte we build a polynomial of degree threshold-1.
	// The secret byte is the constant coefficient and every other coefficient
	// is a fresh random field element:
	// secret[i] + R_1 * x^1 + R_2 * x^2 + ... + R_{t-1} * x^{t-1}
	coefficients := make([]byte, threshold)
	defer clear(coefficients)

	for _, secretByte := range secret {
		coefficients[0] = secretByte
		for i := 1; i < threshold; i++ {
			var err error
			if coefficients[i], err = gf256.RandomNonZero(); err != nil {
				return nil, err
			}
		}
		// Each share gets the evaluation of this byte's polynomial at its own
		// x coordinate:
		// shares[0].Value = [ F1(1), F2(1), ..., FL(1) ]
		// shares[1].Value = [ F1(2), F2(2), ..., FL(2) ]
		// shares[n-1].Value = [ F1(n), F2(n), ..., FL(n) ]
		for i := range shares {
			shares[i].Value = append(shares[i].Value, evaluatePolynomial(coefficients, byte(i+1)))
		}
	}
	return shares, nil
}

// evaluates a polynomial at `x` where `coefficients` take the form:
// f(x) = c[n-1] * x^(n-1) + c[n-2] * x^(n-2) + ... + c[1] * x^1 + c[0]
// All arithmetic is performed over GF(2^8).
func evaluatePolynomial(coefficients []byte, x byte) byte {
	var sum byte
	for i := len(coefficients) - 1; i > 0; i-- {
		sum = gf256.Mul(gf256.Add(sum, coefficients[i]), x)
	}
	return gf256.Add(sum, coefficients[0])
}

// Reconstruct reconstructs a secret from at least threshold shares.
//
// Only the first threshold shares are interpolated; fewer than threshold
// shares is an error here, but Reconstruct cannot detect bogus or corrupted
// shares - reconstructing from wrong values "succeeds" with a wrong secret.
// Integrity checks belong to the caller.
func Reconstruct(shares []Share, threshold int) ([]byte, error) {
	if err := validateReconstructInput(shares, threshold); err != nil {
		return nil, err
	}
	// We only need `threshold` shares to reconstruct the secret.
	shares = shares[:threshold]

	xVals := make([]byte, len(shares))
	for i, s := range shares {
		xVals[i] = byte(s.X)
	}
	// Precompute the Lagrange coefficients before interpolating; they only
	// depend on the x coordinates and are shared by every byte position.
	coefficients, err := lagrangeCoefficients(xVals)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, len(shares[0].Value))
	for i := range secret {
		// The interpolation recovers the constant coefficient of byte i's
		// polynomial, the geometric interpretation of the intersection with
		// the y axis.
		var sum byte
		for j, s := range shares {
			sum = gf256.Add(sum, gf256.Mul(s.Value[i], coefficients[j]))
		}
		secret[i] = sum
	}
	return secret, nil
}

// recovers the coefficients to perform lagrange polynomial interpolation at
// x=0 using the x coordinates:
// ∏j={1,n,j≠i} ( x[j] / ( x[j] - x[i] ) )
// Subtraction is xor in GF(2^8), so no term ordering or flipping is needed.
func lagrangeCoefficients(xVals []byte) ([]byte, error) {
	if len(xVals) < 2 {
		return nil, fmt.Errorf("must have at least 2 values")
	}
	out := make([]byte, len(xVals))
	for i := range xVals {
		out[i] = 1
		for j := range xVals {
			if i == j {
				continue
			}
			if xVals[i] == xVals[j] {
				return nil, fmt.Errorf("all shares should be unique points")
			}
			// ( x[j] * ( x[j] - x[i] )^-1 )
			term, err := gf256.Div(xVals[j], gf256.Add(xVals[j], xVals[i]))
			if err != nil {
				return nil, err
			}
			out[i] = gf256.Mul(out[i], term)
		}
	}
	return out, nil
}

func validateSplitInput(secret []byte, threshold, numShares int) error {
	if len(secret) == 0 {
		return fmt.Errorf("secret must not be empty")
	}
	if numShares < 2 {
		return fmt.Errorf("numShares must be larger than 1")
	}
	if numShares > 255 {
		return fmt.Errorf("numShares must fit in a field element, got %d", numShares)
	}
	if threshold < 2 {
		return fmt.Errorf("threshold must be larger than 1")
	}
	if threshold > numShares {
		return fmt.Errorf("threshold should be smaller than or equal to numShares")
	}
	return nil
}

func validateReconstructInput(shares []Share, threshold int) error {
	if threshold < 2 {
		return fmt.Errorf("threshold should be at least 2")
	}
	if len(shares) < threshold {
		return fmt.Errorf("not enough shares to reconstruct the secret, need at least %d, got: %d", threshold, len(shares))
	}
	valueLen := len(shares[0].Value)
	for _, s := range shares {
		if s.X < 1 || s.X > 255 {
			return fmt.Errorf("invalid X value: %d", s.X)
		}
		if len(s.Value) == 0 {
			return fmt.Errorf("empty share value")
		}
		if len(s.Value) != valueLen {
			return fmt.Errorf("shares have mismatched lengths: %d and %d", valueLen, len(s.Value))
		}
	}
	return nil
}
