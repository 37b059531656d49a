package archive

// ListRecursive exports listRecursive for testing.
var ListRecursive = listRecursive
