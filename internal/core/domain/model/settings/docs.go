// Package settings contains the operator-controlled configuration read on every
// rate request: keyword allow/deny lists, the price adjustment and the route
// eligibility rules with their built-in defaults.
package settings
