package citation

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// envelope peeks at the type tag before the full record is decoded.
type envelope struct {
	SourceType SourceType `json:"sourceType"`
}

// New returns an empty variant for the given source type, or an Unknown
// variant carrying the unrecognized tag.
func New(t SourceType) Fields {
	switch t {
	case SourceBook:
		return &Book{}
	case SourceJournal:
		return &Journal{}
	case SourceWebsite:
		return &Website{}
	case SourceBlog:
		return &Blog{}
	case SourceNewspaper:
		return &Newspaper{}
	case SourceVideo:
		return &Video{}
	case SourceImage:
		return &Image{}
	case SourceFilm:
		return &Film{}
	case SourceTVSeries:
		return &TVSeries{}
	case SourceTVEpisode:
		return &TVEpisode{}
	case SourceMiscellaneous:
		return &Miscellaneous{}
	default:
		return &Unknown{Type: t}
	}
}

// Decode unmarshals a single citation record from JSON, dispatching on the
// sourceType tag. Records with an unrecognized tag decode into an Unknown
// variant rather than failing.
func Decode(data []byte) (Fields, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("reading sourceType: %w", err)
	}

	fields := New(env.SourceType)
	if _, ok := fields.(*Unknown); ok {
		slog.Warn("unrecognized sourceType, record will format as empty", "sourceType", env.SourceType)
	}
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, fmt.Errorf("decoding %s citation: %w", env.SourceType, err)
	}
	return fields, nil
}

// DecodeList unmarshals a JSON array of citation records. A single JSON
// object is accepted as a one-element list.
func DecodeList(data []byte) ([]Fields, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Fall back to a single record
		fields, serr := Decode(data)
		if serr != nil {
			return nil, fmt.Errorf("decoding citation list: %w", err)
		}
		return []Fields{fields}, nil
	}

	citations := make([]Fields, 0, len(raw))
	for i, msg := range raw {
		fields, err := Decode(msg)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		citations = append(citations, fields)
	}
	return citations, nil
}

// DecodeYAMLList unmarshals a YAML document of citation records by
// round-tripping through JSON, so both inputs share one set of field names.
func DecodeYAMLList(data []byte) ([]Fields, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalizing YAML: %w", err)
	}
	return DecodeList(jsonData)
}

// Marshal serializes a citation record to JSON with its sourceType tag, the
// inverse of Decode.
func Marshal(f Fields) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	// The variants carry their tag in the type, not a struct field; splice
	// it into the object unless one is already present (Unknown).
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if _, ok := obj["sourceType"]; !ok {
		obj["sourceType"] = json.RawMessage(`"` + string(f.SourceType()) + `"`)
	}
	return json.Marshal(obj)
}
