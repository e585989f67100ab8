// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Identity and numeric columns of a feature table, in schema order. Skill
// columns follow, one per vocabulary phrase, named SkillColumnPrefix+phrase.
const (
	ColumnFileName        = "file_name"
	ColumnName            = "name"
	ColumnEmail           = "email"
	ColumnPhone           = "phone"
	ColumnYearsExperience = "years_experience"

	SkillColumnPrefix = "skill_"
)

// BaseColumns lists the non-skill columns in schema order.
var BaseColumns = []string{
	ColumnFileName, ColumnName, ColumnEmail, ColumnPhone, ColumnYearsExperience,
}

// SkillFlag records whether one vocabulary phrase was found.
type SkillFlag struct {
	Skill   string `yaml:"skill"`
	Present bool   `yaml:"present"`
}

// FeatureRecord is the fixed-schema projection of a CandidateProfile. Skills
// holds one flag per vocabulary phrase in vocabulary order, so every record
// built from the same vocabulary has the same columns.
type FeatureRecord struct {
	FileName        string
	Name            string
	Email           string
	Phone           string
	YearsExperience float64
	Skills          []SkillFlag
}

// Columns returns the record's column names in schema order.
func (r FeatureRecord) Columns() []string {
	cols := make([]string, 0, len(BaseColumns)+len(r.Skills))
	cols = append(cols, BaseColumns...)
	for _, s := range r.Skills {
		cols = append(cols, SkillColumnPrefix+s.Skill)
	}
	return cols
}

// HasSkill reports whether the flag for skill is set.
func (r FeatureRecord) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s.Skill == skill {
			return s.Present
		}
	}
	return false
}

// MarshalJSON encodes the record as a flat object whose keys follow schema
// order.
func (r FeatureRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := r.writeFields(&buf, true); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat object, keeping skill columns in the order
// they appear.
func (r *FeatureRecord) UnmarshalJSON(data []byte) error {
	*r = FeatureRecord{}
	return decodeFlatObject(data, func(key string, value any) error {
		_, err := r.SetField(key, value)
		return err
	})
}

// field is one encoded key/value pair of a flat record.
type field struct {
	key   string
	value any
}

// fields returns the record's key/value pairs in schema order.
func (r FeatureRecord) fields(withFileName bool) []field {
	out := make([]field, 0, len(BaseColumns)+len(r.Skills))
	if withFileName {
		out = append(out, field{ColumnFileName, r.FileName})
	}
	out = append(out,
		field{ColumnName, r.Name},
		field{ColumnEmail, r.Email},
		field{ColumnPhone, r.Phone},
		field{ColumnYearsExperience, r.YearsExperience},
	)
	for _, s := range r.Skills {
		out = append(out, field{SkillColumnPrefix + s.Skill, s.Present})
	}
	return out
}

// writeFields appends the record's key/value pairs, without braces.
func (r FeatureRecord) writeFields(buf *bytes.Buffer, withFileName bool) error {
	return writeFields(buf, r.fields(withFileName))
}

func writeFields(buf *bytes.Buffer, fs []field) error {
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	return nil
}

// SetField assigns a decoded value to the column named key. It reports
// whether key is a feature column at all.
func (r *FeatureRecord) SetField(key string, value any) (bool, error) {
	switch key {
	case ColumnFileName:
		r.FileName = stringValue(value)
	case ColumnName:
		r.Name = stringValue(value)
	case ColumnEmail:
		r.Email = stringValue(value)
	case ColumnPhone:
		r.Phone = stringValue(value)
	case ColumnYearsExperience:
		f, err := floatValue(value)
		if err != nil {
			return true, fmt.Errorf("column %s: %w", key, err)
		}
		r.YearsExperience = f
	default:
		skill, ok := strings.CutPrefix(key, SkillColumnPrefix)
		if !ok {
			return false, nil
		}
		present, err := flagValue(value)
		if err != nil {
			return true, fmt.Errorf("column %s: %w", key, err)
		}
		r.Skills = append(r.Skills, SkillFlag{Skill: skill, Present: present})
	}
	return true, nil
}

// decodeFlatObject walks a JSON object in key order, handing each decoded
// value to fn.
func decodeFlatObject(data []byte, fn func(key string, value any) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func floatValue(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case string:
		if t == "" {
			return 0, nil
		}
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("unexpected value %v", v)
	}
}

// flagValue accepts booleans as well as the 0/1 encoding tabular tools use.
func flagValue(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		return f != 0, err
	case float64:
		return t != 0, nil
	case string:
		return ParseFlag(t)
	default:
		return false, fmt.Errorf("unexpected flag %v", v)
	}
}

// ParseFlag parses a textual skill flag ("1", "0", "true", "false", "").
func ParseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0, nil
	}
	return strconv.ParseBool(s)
}
