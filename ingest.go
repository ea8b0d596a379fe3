package shamir

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrBadDocument = errors.New("malformed share document")

// Document is the parsed input contract: the threshold metadata from the
// "keys" entry plus the raw share records, sorted by x so that runs over
// the same document always see the same share order.
type Document struct {
	N       int // advertised share count, informational
	K       int // threshold
	Records []Record
}

// ParseDocument reads a share document. Every key other than "keys" is a
// decimal x-coordinate mapping to that share's base and value strings.
// The dynamic keys rule out a typed struct, so the document goes through
// protojson into a structpb value tree and is walked from there.
func ParseDocument(data []byte) (*Document, error) {
	tree := &structpb.Struct{}
	if err := protojson.Unmarshal(data, tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	fields := tree.GetFields()

	meta := fields["keys"].GetStructValue()
	if meta == nil {
		return nil, fmt.Errorf("%w: missing %q entry", ErrBadDocument, "keys")
	}

	doc := &Document{
		N: int(meta.GetFields()["n"].GetNumberValue()),
		K: int(meta.GetFields()["k"].GetNumberValue()),
	}

	if doc.K < 1 {
		return nil, fmt.Errorf("%w: threshold k=%d", ErrBadDocument, doc.K)
	}

	for key, val := range fields {
		if key == "keys" {
			continue
		}

		x, err := strconv.ParseInt(key, 10, 64)
		if err != nil || x < 1 {
			return nil, fmt.Errorf("%w: share key %q is not a positive decimal", ErrBadDocument, key)
		}

		entry := val.GetStructValue()
		if entry == nil {
			return nil, fmt.Errorf("%w: share %d is not an object", ErrBadDocument, x)
		}

		base, err := strconv.Atoi(entry.GetFields()["base"].GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("%w: share %d has no decimal base", ErrBadDocument, x)
		}

		doc.Records = append(doc.Records, Record{
			X:     x,
			Base:  base,
			Value: entry.GetFields()["value"].GetStringValue(),
		})
	}

	sort.Slice(doc.Records, func(i, j int) bool { return doc.Records[i].X < doc.Records[j].X })

	return doc, nil
}

// SolveDocument is the whole pipeline: parse the document, decode its
// records under the solver's arithmetic, and run the consistency search
// with the document's threshold.
func SolveDocument(data []byte, solver *Solver, strict bool) (*Result, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	shares, err := DecodeRecords(doc.Records, solver.Arith, strict)
	if err != nil {
		return nil, err
	}

	return solver.Reconstruct(shares, doc.K)
}
