package catalog

import (
	"fmt"
	"strings"
)

// Synthetic ISBN format: "978-3-16-XXXXXX-0" với XXXXXX là Gutendex id
// zero-padded 6 chữ số. ISBN thật không bao giờ trùng format này vì
// prefix/suffix cố định và digit group luôn đủ 6 ký tự.
const (
	isbnPrefix = "978-3-16-"
	isbnSuffix = "-0"
	isbnLength = 17
)

func gutenbergCoverURL(gutendexID int) string {
	return fmt.Sprintf("https://www.gutenberg.org/cache/epub/%d/pg%d.cover.medium.jpg", gutendexID, gutendexID)
}

// ISBNFromGutendexID encode remote id thành synthetic ISBN
func ISBNFromGutendexID(gutendexID int) string {
	return fmt.Sprintf("%s%06d%s", isbnPrefix, gutendexID, isbnSuffix)
}

// GutendexIDFromISBN decode synthetic ISBN về remote id.
// Pure và total: trả về (0, false) cho mọi string không đúng shape,
// kể cả ISBN thật như "978-0-452-28423-4" - không bao giờ panic.
func GutendexIDFromISBN(isbn string) (int, bool) {
	if len(isbn) != isbnLength ||
		!strings.HasPrefix(isbn, isbnPrefix) ||
		!strings.HasSuffix(isbn, isbnSuffix) {
		return 0, false
	}

	group := isbn[len(isbnPrefix) : isbnLength-len(isbnSuffix)]
	id := 0
	for _, ch := range group {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		id = id*10 + int(ch-'0')
	}
	return id, true
}
