// export_test.go exports private functions for white-box testing.
package logger

var (
	ErrorChain  = errorChain
	FormatError = formatError
)
