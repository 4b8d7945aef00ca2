package college

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Scalar is a document field that may be written as a JSON string, number
// or boolean. Numbers keep their literal text, so a fare of 25 reads "25".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", kindOf(trimmed[0]))
	default:
		*s = Scalar(trimmed)
	}
	return nil
}

// String returns the field text.
func (s Scalar) String() string {
	return string(s)
}

// Empty reports whether the field is absent or blank.
func (s Scalar) Empty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// StringList accepts either a JSON array of scalars or a single scalar.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] != '[' {
		var single Scalar
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		if single.Empty() {
			*l = nil
			return nil
		}
		*l = StringList{single.String()}
		return nil
	}
	var items []Scalar
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	*l = out
	return nil
}

// HOD is the head of a department.
type HOD struct {
	Name     Scalar `json:"name"`
	Email    Scalar `json:"email"`
	Phone    Scalar `json:"phone"`
	LinkedIn Scalar `json:"linkedin"`
}

// Departments maps department keys to HODs and remembers the document's
// key order.
type Departments struct {
	keys  []string
	byKey map[string]HOD
}

// NewDepartments builds Departments from ordered keys, mostly for tests.
func NewDepartments(keys []string, hods map[string]HOD) Departments {
	d := Departments{byKey: make(map[string]HOD, len(keys))}
	for _, key := range keys {
		if _, dup := d.byKey[key]; !dup {
			d.keys = append(d.keys, key)
		}
		d.byKey[key] = hods[key]
	}
	return d
}

// UnmarshalJSON streams the object so key order survives decoding.
func (d *Departments) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = Departments{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("hods: expected object, got %v", tok)
	}
	out := Departments{byKey: make(map[string]HOD)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("hods: unexpected key %v", keyTok)
		}
		var hod HOD
		if err := dec.Decode(&hod); err != nil {
			return fmt.Errorf("hods[%q]: %w", key, err)
		}
		if _, dup := out.byKey[key]; !dup {
			out.keys = append(out.keys, key)
		}
		out.byKey[key] = hod
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

// Route is a campus bus route.
type Route struct {
	RouteNo Scalar `json:"route_no"`
	From    Scalar `json:"from"`
	Via     Scalar `json:"via"`
	Fare    Scalar `json:"fare"`
	Timings Scalar `json:"timings"`
}

// Driver operates a bus route. RouteNo is not checked against the routes.
type Driver struct {
	RouteNo    Scalar `json:"route_no"`
	DriverName Scalar `json:"driver_name"`
	From       Scalar `json:"from"`
	Contact    Scalar `json:"contact"`
}

// AcademicEvent is one academic calendar entry.
type AcademicEvent struct {
	Year     Scalar `json:"year"`
	Semester Scalar `json:"semester"`
	Event    Scalar `json:"event"`
	Dates    Scalar `json:"dates"`
}

// Transport groups the transport section of the document.
type Transport struct {
	Routes []Route `json:"routes"`
}

// Document mirrors college_details.json.
type Document struct {
	Name             Scalar          `json:"name"`
	Address          Scalar          `json:"address"`
	Email            Scalar          `json:"email"`
	Phone            StringList      `json:"phone"`
	Website          Scalar          `json:"website"`
	About            Scalar          `json:"about"`
	Facilities       StringList      `json:"facilities"`
	HODs             Departments     `json:"hods"`
	Transport        Transport       `json:"transport"`
	Drivers          []Driver        `json:"drivers"`
	AcademicCalendar []AcademicEvent `json:"academic_calendar"`
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
