package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UserRef is a member's user id normalized to one canonical string. Historic
// records (and older API clients) carry the reference in several shapes:
// a raw id string, an ObjectID, or a nested user document {_id: "..."}.
// All of them decode into the same plain id here so call sites never probe
// for shapes themselves.
type UserRef string

func (u UserRef) String() string {
	return string(u)
}

func (u UserRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u))
}

func (u *UserRef) UnmarshalJSON(data []byte) error {
	// Shape 1: plain string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = UserRef(s)
		return nil
	}

	// Shape 2: nested object carrying the id under a known key
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("user reference: unsupported shape: %s", string(data))
	}
	for _, key := range []string{"_id", "id", "userId"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			*u = UserRef(id)
			return nil
		}
	}
	return fmt.Errorf("user reference: no id field in object")
}

func (u UserRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(u))
}

func (u *UserRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*u = UserRef(rv.StringValue())
		return nil
	case bsontype.ObjectID:
		*u = UserRef(rv.ObjectID().Hex())
		return nil
	case bsontype.Null:
		*u = ""
		return nil
	case bsontype.EmbeddedDocument:
		doc := rv.Document()
		for _, key := range []string{"_id", "id", "user_id"} {
			val, err := doc.LookupErr(key)
			if err != nil {
				continue
			}
			switch val.Type {
			case bsontype.String:
				*u = UserRef(val.StringValue())
				return nil
			case bsontype.ObjectID:
				*u = UserRef(val.ObjectID().Hex())
				return nil
			}
		}
		return fmt.Errorf("user reference: no id field in document")
	}
	return fmt.Errorf("user reference: unsupported bson type %s", t)
}

// MemberUserID resolves the canonical user id of a membership record,
// falling back to the record's own _id when the user reference is absent.
func MemberUserID(m GroupMember) string {
	if m.UserID != "" {
		return string(m.UserID)
	}
	return m.ID
}
