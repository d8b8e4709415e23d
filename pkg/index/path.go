package index

// MaxFuzzySeparators bounds how many "-"/"_" positions FuzzyNames varies.
// Each position doubles the candidate count, so 10 positions yield at most
// 1024 spellings. Separators past the limit keep their original character.
const MaxFuzzySeparators = 10

// PathFor returns the location of a crate's entry inside the index tree.
//
// The name is lowercased and placed by length:
//
//	| length | path               |
//	| ------ | ------------------ |
//	| 1      | 1/<name>           |
//	| 2      | 2/<name>           |
//	| 3      | 3/<c0>/<name>      |
//	| >= 4   | <c0c1>/<c2c3>/<name> |
//
// PathFor panics on an empty name; callers reject empty names first.
func PathFor(name string) string {
	name = asciiLower(name)
	switch len(name) {
	case 0:
		panic("index: PathFor called with empty crate name")
	case 1:
		return "1/" + name
	case 2:
		return "2/" + name
	case 3:
		return "3/" + name[:1] + "/" + name
	default:
		return name[:2] + "/" + name[2:4] + "/" + name
	}
}

// asciiLower lowercases ASCII letters only; the index layout leaves other
// characters untouched.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// FuzzyNames returns every spelling of name that differs only in whether each
// separator is "-" or "_".
//
//	| input            | output                                                                  |
//	| ---------------- | ----------------------------------------------------------------------- |
//	| cargo            | cargo                                                                   |
//	| cargo-edit       | cargo-edit, cargo_edit                                                  |
//	| parking_lot_core | parking_lot_core, parking-lot_core, parking_lot-core, parking-lot-core |
//
// The input itself is always the first element so an exact match is tried
// before any substitute. Only the first MaxFuzzySeparators separators vary.
func FuzzyNames(name string) []string {
	var positions []int
	for i := 0; i < len(name) && len(positions) < MaxFuzzySeparators; i++ {
		if name[i] == '-' || name[i] == '_' {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return []string{name}
	}

	buf := []byte(name)
	names := make([]string, 0, 1<<len(positions))
	for mask := 0; mask < 1<<len(positions); mask++ {
		for bit, pos := range positions {
			if mask>>bit&1 == 1 {
				buf[pos] = '-'
			} else {
				buf[pos] = '_'
			}
		}
		names = append(names, string(buf))
	}

	for i, n := range names {
		if n == name {
			names[0], names[i] = names[i], names[0]
			break
		}
	}
	return names
}
