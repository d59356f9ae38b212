package v1handler

import (
	"genericurl/pkg/domain"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func encodeCanonical(e *jx.Encoder, c domain.Canonical) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("input", func(e *jx.Encoder) { e.Str(c.Input) })
		e.Field("url", func(e *jx.Encoder) { e.Str(c.URL) })
		e.Field("rule", func(e *jx.Encoder) { e.Str(string(c.Rule)) })
		if c.ItemID != "" {
			e.Field("itemId", func(e *jx.Encoder) { e.Str(c.ItemID) })
		}
	})
}

func encodeBatch(e *jx.Encoder, items []domain.Canonical) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range items {
					encodeCanonical(e, c)
				}
			})
		})
	})
}

func encodeError(e *jx.Encoder, body ErrorBody) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(body.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(body.Message) })
	})
}

// errMissingURLs is returned when a batch request has no "urls" field.
var errMissingURLs = errors.New(`missing "urls"`)

// decodeBatchRequest reads {"urls": [...]}. Unknown fields are ignored.
func decodeBatchRequest(d *jx.Decoder) ([]string, error) {
	var (
		urls []string
		seen bool
	)

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "urls":
			seen = true
			urls = []string{}

			return errors.Wrap(d.Arr(func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "url")
				}
				urls = append(urls, s)

				return nil
			}), "urls")
		default:
			return errors.Wrapf(d.Skip(), "skip %q", key)
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode batch request")
	}

	if !seen {
		return nil, errMissingURLs
	}

	return urls, nil
}

func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
