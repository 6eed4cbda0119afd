package bubble

import "strings"

// ParentPath strips the last "/segment" from p. The parent of a top-level
// bubble is the root. The root has no parent and ok is false.
func ParentPath(p string) (parent string, ok bool) {
	if p == RootPath || p == "" {
		return "", false
	}
	i := strings.LastIndexByte(p, '/')
	if i <= 0 {
		return RootPath, true
	}
	return p[:i], true
}

// JoinPath appends a child name to a parent path.
func JoinPath(parent, name string) string {
	if parent == RootPath || parent == "" {
		return RootPath + name
	}
	return parent + "/" + name
}

// BaseName returns the last segment of p, or "" for the root.
func BaseName(p string) string {
	if p == RootPath {
		return ""
	}
	return p[strings.LastIndexByte(p, '/')+1:]
}

// PathDepth returns the number of segments in p. The root has depth 0.
func PathDepth(p string) int {
	if p == RootPath || p == "" {
		return 0
	}
	return strings.Count(p, "/")
}

// IsAncestor reports whether ancestor is p itself or lies above it.
func IsAncestor(ancestor, p string) bool {
	if ancestor == RootPath || ancestor == p {
		return true
	}
	return strings.HasPrefix(p, ancestor+"/")
}

// ValidPath reports whether p is "/" or an absolute path of non-empty
// segments without a trailing slash.
func ValidPath(p string) bool {
	if p == RootPath {
		return true
	}
	if !strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/") {
		return false
	}
	return !strings.Contains(p, "//")
}

// ancestry returns the chain from the root down to p, both included.
func ancestry(p string) []string {
	chain := []string{p}
	for cur, ok := ParentPath(p); ok; cur, ok = ParentPath(cur) {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// commonAncestor returns the deepest path that is an ancestor of both a and b.
func commonAncestor(a, b string) string {
	ca, cb := ancestry(a), ancestry(b)
	common := RootPath
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] != cb[i] {
			break
		}
		common = ca[i]
	}
	return common
}
