// File: utils/constants.go
package utils

// PurchaseClaimPrefix is the prefix used for Redis credit purchase de-duplication keys.
const PurchaseClaimPrefix = "credits:claim:"

// DateLayout is the layout of plan dates ("weekStarting").
const DateLayout = "2006-01-02"
