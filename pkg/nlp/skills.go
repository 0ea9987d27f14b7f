package nlp

// skillAliases collapses common spellings of a skill onto one canonical label.
// Keys and values are in normalized form (see Normalize).
var skillAliases = map[string]string{
	"js":                  "javascript",
	"ts":                  "typescript",
	"golang":              "go",
	"py":                  "python",
	"postgres":            "postgresql",
	"k8s":                 "kubernetes",
	"node":                "nodejs",
	"node js":             "nodejs",
	"reactjs":             "react",
	"react js":            "react",
	"nextjs":              "next js",
	"html5":               "html",
	"css3":                "css",
	"machine learning":    "ml",
	"amazon web services": "aws",
	"ci cd":               "cicd",
	"ci":                  "cicd",
	"ux":                  "ui ux",
	"uiux":                "ui ux",
	"rest":                "api",
	"rest api":            "api",
}

// CanonicalSkill normalizes a free-text skill label and resolves known aliases,
// so "React.js", "react" and "ReactJS" all match the same taxonomy entry.
func CanonicalSkill(skill string) string {
	n := Normalize(skill)
	if canon, ok := skillAliases[n]; ok {
		return canon
	}
	return n
}

// CanonicalSet maps a list of free-text skills to a canonical set,
// dropping empties and duplicates.
func CanonicalSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		c := CanonicalSkill(s)
		if c == "" {
			continue
		}
		out[c] = struct{}{}
	}
	return out
}
