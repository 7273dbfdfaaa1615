package conf

// HashCells - Default initial number of slots in a table
const HashCells int = 57

// TooFull - Default load factor, a table grows when occupied slots / capacity exceeds it
const TooFull float64 = 0.5

// GrowthRatio - Default factor to multiply capacity with when a table grows
const GrowthRatio int = 2

// PolynomialBase - Multiplier used in the polynomial (Horner's rule) string hash
const PolynomialBase int64 = 37
