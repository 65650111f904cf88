package value

import "time"

// Equal reports deep structural equality between a document value and a
// query literal. The second argument is the query side: the asymmetric
// rules (Regex matching a String, Null matching an absent value) read the
// pattern and the null from there.
//
// Rules:
//   - Null equals Null, and an absent document value (nil) equals a Null
//     query literal. Nothing else equals Null.
//   - Int and Float compare numerically across kinds: Int(5) equals
//     Float(5.0). Ordering treats the numeric kinds uniformly, so equality
//     does too.
//   - Arrays are equal iff same length and pairwise equal, in order.
//   - Objects are equal iff same key set and equal on every key; an extra
//     key on either side breaks equality.
//   - Date/DateTime equality is chronological and same-kind only.
//   - A Regex query literal equals a String document value iff the pattern
//     matches the text. Two Regex values are equal iff their sources are.
//   - All remaining kind combinations are never equal.
//
// Equal is total: it never panics and never errors, for any input pair.
func Equal(doc, query Value) bool {
	// Absent document: only a Null query literal matches.
	if doc == nil {
		switch query.(type) {
		case Null:
			return true
		case nil:
			return true
		default:
			return false
		}
	}
	if query == nil {
		return false
	}

	switch q := query.(type) {
	case Null:
		_, ok := doc.(Null)
		return ok
	case Bool:
		d, ok := doc.(Bool)
		return ok && d == q
	case Int:
		switch d := doc.(type) {
		case Int:
			return d == q
		case Float:
			return float64(d) == float64(q)
		default:
			return false
		}
	case Float:
		switch d := doc.(type) {
		case Int:
			return float64(d) == float64(q)
		case Float:
			return d == q
		default:
			return false
		}
	case String:
		d, ok := doc.(String)
		return ok && d == q
	case Array:
		d, ok := doc.(Array)
		if !ok || len(d) != len(q) {
			return false
		}
		for i := range q {
			if !Equal(d[i], q[i]) {
				return false
			}
		}
		return true
	case Object:
		d, ok := doc.(Object)
		if !ok || len(d) != len(q) {
			return false
		}
		for k, qv := range q {
			dv, exists := d[k]
			if !exists || !Equal(dv, qv) {
				return false
			}
		}
		return true
	case Date:
		d, ok := doc.(Date)
		return ok && d.Time.Equal(q.Time)
	case DateTime:
		d, ok := doc.(DateTime)
		return ok && d.Time.Equal(q.Time)
	case Regex:
		switch d := doc.(type) {
		case String:
			return q.Pattern != nil && q.Pattern.MatchString(string(d))
		case Regex:
			return d.Pattern != nil && q.Pattern != nil &&
				d.Pattern.String() == q.Pattern.String()
		default:
			return false
		}
	default:
		return false
	}
}

// Compare orders two values. Ordering is defined only for same-kind pairs:
// Int/Float against Int/Float (numeric), String against String
// (lexicographic), Date against Date and DateTime against DateTime
// (chronological). Every other combination is unordered and reports
// ok=false; callers treat that as "does not match", never as an error.
func Compare(doc, query Value) (cmp int, ok bool) {
	if doc == nil || query == nil {
		return 0, false
	}

	if di, isInt := doc.(Int); isInt {
		if qi, qIsInt := query.(Int); qIsInt {
			switch {
			case di < qi:
				return -1, true
			case di > qi:
				return 1, true
			default:
				return 0, true
			}
		}
	}

	if dn, isNum := asFloat(doc); isNum {
		qn, qIsNum := asFloat(query)
		if !qIsNum {
			return 0, false
		}
		switch {
		case dn < qn:
			return -1, true
		case dn > qn:
			return 1, true
		default:
			return 0, true
		}
	}

	switch d := doc.(type) {
	case String:
		q, isStr := query.(String)
		if !isStr {
			return 0, false
		}
		switch {
		case d < q:
			return -1, true
		case d > q:
			return 1, true
		default:
			return 0, true
		}
	case Date:
		q, isDate := query.(Date)
		if !isDate {
			return 0, false
		}
		return compareTime(d.Time, q.Time), true
	case DateTime:
		q, isDT := query.(DateTime)
		if !isDT {
			return 0, false
		}
		return compareTime(d.Time, q.Time), true
	default:
		return 0, false
	}
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
