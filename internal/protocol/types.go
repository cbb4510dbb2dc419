package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ServerVersion identifies the protocol implementation a stream came from.
// Variables pass it through untouched; leaves may consult it to select an
// encoding.
type ServerVersion struct {
	Major int
	Minor int
	Raw   string
}

func DefaultServerVersion() ServerVersion {
	return ServerVersion{Major: 3, Minor: 2, Raw: "dods/3.2"}
}

// ParseServerVersion parses strings such as "dods/3.2" or "dods/3.1.14".
// Anything after the minor component is kept in Raw only.
func ParseServerVersion(raw string) (ServerVersion, error) {
	raw = strings.TrimSpace(raw)
	_, ver, ok := strings.Cut(raw, "/")
	if !ok {
		return ServerVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	parts := strings.SplitN(ver, ".", 3)
	if len(parts) < 2 {
		return ServerVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return ServerVersion{}, fmt.Errorf("%w: major in %q", ErrInvalidVersion, raw)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return ServerVersion{}, fmt.Errorf("%w: minor in %q", ErrInvalidVersion, raw)
	}
	return ServerVersion{Major: major, Minor: minor, Raw: raw}, nil
}

// AtLeast reports whether v is major.minor or newer.
func (v ServerVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v ServerVersion) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return fmt.Sprintf("dods/%d.%d", v.Major, v.Minor)
}
