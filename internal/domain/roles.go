package domain

// Roles is a set of presentation flags attached to an annotated word.
// Roles never influence whether a word matches the dictionary.
type Roles uint8

const (
	// RoleMark flags grammatical particles.
	RoleMark Roles = 1 << iota
	// RolePrepo flags prepositions.
	RolePrepo
)

// MarkWords are the particles highlighted as "mark".
var MarkWords = map[string]struct{}{
	"li": {}, "e": {}, "pi": {}, "o": {}, "la": {},
}

// PrepositionWords are the prepositions highlighted as "prepo".
var PrepositionWords = map[string]struct{}{
	"kepeken": {}, "lon": {}, "sama": {}, "tan": {}, "tawa": {},
}

// IsMark reports whether word is a particle.
func IsMark(word string) bool {
	_, ok := MarkWords[word]
	return ok
}

// IsPreposition reports whether word is a preposition.
func IsPreposition(word string) bool {
	_, ok := PrepositionWords[word]
	return ok
}

// RolesOf classifies an already-lowercased lookup key.
func RolesOf(word string) Roles {
	var r Roles
	if IsMark(word) {
		r |= RoleMark
	}
	if IsPreposition(word) {
		r |= RolePrepo
	}
	return r
}

// Has reports whether all flags in other are set.
func (r Roles) Has(other Roles) bool { return r&other == other && other != 0 }

// Classes returns the CSS class names for the set, in a fixed order.
func (r Roles) Classes() []string {
	var out []string
	if r.Has(RoleMark) {
		out = append(out, "mark")
	}
	if r.Has(RolePrepo) {
		out = append(out, "prepo")
	}
	return out
}
