package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/wirecodec/wirecodec/wire"
)

// userRecord demonstrates a hand-written message type implementing the
// codec's Marshaler/Unmarshaler contract: no generated code, no schema
// lookup, just field-by-field calls against a Writer/Reader.
type userRecord struct {
	id      int32
	name    string
	tags    []string
	ratings []int32
}

func (u *userRecord) MarshalTo(w *wire.Writer) error {
	if err := w.Int32(1, u.id); err != nil {
		return err
	}
	if err := w.String(2, u.name); err != nil {
		return err
	}
	for _, tag := range u.tags {
		if err := w.String(3, tag); err != nil {
			return err
		}
	}
	return w.PackedInt32(4, u.ratings)
}

func (u *userRecord) UnmarshalFrom(r *wire.Reader) error {
	for {
		more, err := r.NextField()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		switch r.FieldNumber() {
		case 1:
			v, err := r.ReadVarint32()
			if err != nil {
				return err
			}
			u.id = v
		case 2:
			v, err := r.ReadString()
			if err != nil {
				return err
			}
			u.name = v
		case 3:
			v, err := r.ReadString()
			if err != nil {
				return err
			}
			u.tags = append(u.tags, v)
		case 4:
			v, err := r.ReadPackedInt32()
			if err != nil {
				return err
			}
			u.ratings = v
		default:
			if err := r.SkipField(); err != nil {
				return err
			}
		}
	}
}

func main() {
	fmt.Println("wirecodec demo: encode, decode, and stream a hand-written message")

	original := &userRecord{
		id:      42,
		name:    "Alice",
		tags:    []string{"go", "protobuf"},
		ratings: []int32{5, 4, 5},
	}

	encoded, err := wire.EncodeMessage(original)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Printf("encoded %d bytes: %s\n", len(encoded), hex.EncodeToString(encoded))

	decoded := &userRecord{}
	if err := wire.DecodeMessage(encoded, decoded); err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("decoded: id=%d name=%q tags=%v ratings=%v\n",
		decoded.id, decoded.name, decoded.tags, decoded.ratings)

	fmt.Println("\nstreaming two messages back to back")
	messages := []*userRecord{original, {id: 7, name: "Bob"}}

	w := wire.NewWriter()
	for _, u := range messages {
		body, err := wire.EncodeMessage(u)
		if err != nil {
			log.Fatalf("encode frame: %v", err)
		}
		if err := w.WriteHeader(uint64(len(body))); err != nil {
			log.Fatalf("write header: %v", err)
		}
		w.WriteRaw(body)
	}
	if err := w.WriteHeader(0); err != nil {
		log.Fatalf("write terminator: %v", err)
	}

	r := wire.NewReader(w.Bytes())
	for {
		length, more, err := r.Header()
		if err != nil {
			log.Fatalf("read header: %v", err)
		}
		if !more {
			break
		}
		u := &userRecord{}
		if err := u.UnmarshalFrom(r); err != nil {
			log.Fatalf("decode frame: %v", err)
		}
		fmt.Printf("frame (%d bytes): id=%d name=%q\n", length, u.id, u.name)
	}
}
