package badger

import (
	"fmt"

	"github.com/sociolens/tweetlens/core"
)

// Key prefixes for different data types. Prefixes must not be prefixes of
// one another, so prefix scans never cross a type boundary.
const (
	recordPrefix      = "twrec"
	authorIndexPrefix = "twauth"
	searchCachePrefix = "twsrch"
)

// makeRecordKey generates a key for a record by ID.
func makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", recordPrefix, id))
}

// makeAuthorKey generates a composite key for the author index.
// Format: prefix:authorID:recordID
func makeAuthorKey(authorID string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", authorIndexPrefix, authorID, id))
}

// makePartialAuthorKey generates a partial key for author scans.
// Format: prefix:authorID:
func makePartialAuthorKey(authorID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", authorIndexPrefix, authorID))
}

// makeSearchCacheKey generates a key for a cached search. The query text is
// hashed so arbitrary user input never shapes key layout.
func makeSearchCacheKey(query string) []byte {
	return []byte(fmt.Sprintf("%s:%s", searchCachePrefix, core.IDFromContent(query)))
}
