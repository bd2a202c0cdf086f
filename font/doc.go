// The font subpackage manages the typefaces used by watch faces and
// provides the default resource [Loader], backed by the Go fonts
// shipped with golang.org/x/image/font/gofont.
//
// Typefaces are registered in a [Library] by family and weight, which
// is what text styles refer to. When a weight is missing, the library
// falls back to the closest weight available for the family.
package font
