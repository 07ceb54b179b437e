package vorbiscomment

// Field is a single Vorbis comment entry.
//
// ID is kept exactly as read or assigned; comparisons ignore ASCII case.
// Value holds the raw bytes after the first '='.
type Field struct {
	ID    string
	Value []byte
}

// IsEmpty reports whether the field has no value. Empty fields are kept
// in memory but never written.
func (f Field) IsEmpty() bool {
	return len(f.Value) == 0
}

// Matches reports whether the field's identifier equals id, ignoring ASCII
// case.
func (f Field) Matches(id string) bool {
	return normalizeID(f.ID) == normalizeID(id)
}

// String returns the field in its "ID=VALUE" text form.
func (f Field) String() string {
	return f.ID + "=" + string(f.Value)
}

// normalizeID upper-cases ASCII letters only. Bytes outside a-z are left
// alone so identifiers that are not valid ASCII still compare byte-wise.
func normalizeID(id string) string {
	for i := 0; i < len(id); i++ {
		if c := id[i]; c >= 'a' && c <= 'z' {
			b := []byte(id)
			for j := i; j < len(b); j++ {
				if b[j] >= 'a' && b[j] <= 'z' {
					b[j] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return id
}
