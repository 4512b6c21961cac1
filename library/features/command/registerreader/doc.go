// Package registerreader implements the Register Reader use case.
//
// A reader is identified for duplicate detection by full name and phone. Phone numbers follow the Belarusian
// format +375 followed by nine digits.
package registerreader
