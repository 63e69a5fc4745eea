// ABOUTME: QName represents an XML qualified name as namespace URI plus local part
// ABOUTME: Replaces ad hoc "{namespace}local" strings with a structured type

package domain

import (
	"fmt"
	"strings"
)

// QName identifies an XML element unambiguously by namespace URI and
// local name.
type QName struct {
	Space string
	Local string
}

// NewQName builds a QName from a namespace URI and a local name.
func NewQName(space, local string) QName {
	return QName{Space: space, Local: local}
}

// AtomName builds a QName in the Atom namespace.
func AtomName(local string) QName {
	return QName{Space: NSAtom, Local: local}
}

// ParseQName parses the Clark notation "{namespace}local". Input without
// a namespace brace is treated as a local name with no namespace.
func ParseQName(s string) QName {
	if strings.HasPrefix(s, "{") {
		if end := strings.Index(s, "}"); end > 0 {
			return QName{Space: s[1:end], Local: s[end+1:]}
		}
	}
	return QName{Local: s}
}

// String renders the QName in Clark notation.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return fmt.Sprintf("{%s}%s", q.Space, q.Local)
}

// IsZero reports whether the QName is empty.
func (q QName) IsZero() bool {
	return q.Space == "" && q.Local == ""
}
