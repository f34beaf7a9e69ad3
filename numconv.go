package zjson

import "math"

// decompose splits a numeric lexeme into its integer, fractional, and
// exponent subtokens by scanning it once through the number-decomposition
// table (tables.go). It fails if a '.' follows another '.' or follows
// 'e'/'E', or if the lexeme contains a byte the table doesn't recognize.
func decompose(lexeme []byte) (intPart, fracPart, expPart []byte, ok bool) {
	dot, exp, end := -1, -1, len(lexeme)

scan:
	for i := 0; i < len(lexeme); i++ {
		switch numberTable[lexeme[i]] {
		case numLoop:
		case numFloatPoint:
			if dot != -1 || exp != -1 {
				return nil, nil, nil, false
			}
			dot = i
		case numExponent:
			if exp != -1 {
				return nil, nil, nil, false
			}
			exp = i
		case numBreak:
			end = i
			break scan
		default:
			return nil, nil, nil, false
		}
	}

	intEnd := end
	if dot != -1 {
		intEnd = dot
	} else if exp != -1 {
		intEnd = exp
	}
	if intEnd == 0 {
		return nil, nil, nil, false
	}
	intPart = lexeme[:intEnd]

	if dot != -1 {
		fracEnd := end
		if exp != -1 {
			fracEnd = exp
		}
		fracPart = lexeme[dot+1 : fracEnd]
	}
	if exp != -1 {
		expPart = lexeme[exp+1 : end]
	}
	return intPart, fracPart, expPart, true
}

// stoi converts the integer portion of a numeric lexeme. It silently
// skips any non-digit byte it encounters, so "1a2" converts to 12, and
// since the number-decomposition table treats '-' and '+' as Loop
// wherever they occur in the integer run, a lexeme like "1-2" is
// likewise accepted and read as 12. Only a leading '-' is taken as the
// value's sign. When called through convertNumber, only digits, '-' and
// '+' reach stoi: decompose rejects a lexeme such as "1a2" first.
func stoi(b []byte) (value int64, negative bool) {
	negative = len(b) > 0 && b[0] == '-'
	for _, c := range b {
		if c < '0' || c > '9' {
			continue
		}
		value = value*10 + int64(c-'0')
	}
	return value, negative
}

// fracValue converts a fractional lexeme (the bytes after '.'), where
// the digit at 1-based position k contributes d * 10^-k.
func fracValue(b []byte) float64 {
	var f float64
	for i, c := range b {
		if c < '0' || c > '9' {
			continue
		}
		f += float64(c-'0') * math.Pow(10, -float64(i+1))
	}
	return f
}

// pow10 computes 10^n by exponentiation-by-squaring on an integer
// accumulator, matching the simple-decimal model the spec calls for
// rather than a library log/exp routine.
func pow10(n int64) float64 {
	var p int64 = 1
	base := int64(10)
	for n > 0 {
		if n&1 == 1 {
			p *= base
		}
		base *= base
		n >>= 1
	}
	return float64(p)
}

// expFactor converts the exponent subtoken to its multiplicative factor:
// 10^e for e >= 0, or 1/10^|e| for e < 0.
func expFactor(b []byte) float64 {
	if len(b) == 0 {
		return 1
	}
	e, negative := stoi(b)
	factor := pow10(e)
	if negative {
		return 1 / factor
	}
	return factor
}

// convertNumber reduces a numeric lexeme to a float64 following the
// documented simple-decimal model: (i + sign(i)·f) · p. It returns ok =
// false if the lexeme fails table-driven decomposition.
func convertNumber(lexeme []byte) (value float64, ok bool) {
	intPart, fracPart, expPart, ok := decompose(lexeme)
	if !ok {
		return 0, false
	}
	i, negative := stoi(intPart)
	f := fracValue(fracPart)
	p := expFactor(expPart)

	mag := float64(i) + f
	if negative {
		mag = -mag
	}
	return mag * p, true
}
