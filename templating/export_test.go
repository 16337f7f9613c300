package templating

// Exported aliases for testing internal functions from
// the templating_test package.

// OpenOutput is an alias for openOutput.
var OpenOutput = openOutput
