// Package utils provides small helpers shared across dirsync packages.
// It includes the ordered NameSet used for reconciliation and the naming
// conventions that turn a login into a directory account.
package utils
