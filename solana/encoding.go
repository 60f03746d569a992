package solana

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/tidwall/gjson"
)

// DataEncoding names how raw account bytes are written in a dump.
type DataEncoding string

const (
	EncodingBase64 DataEncoding = "base64"
	EncodingBase58 DataEncoding = "base58"
	EncodingHex    DataEncoding = "hex"
	EncodingBinary DataEncoding = "binary"
	EncodingJSON   DataEncoding = "json"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported account data encoding")
	ErrNoAccountData       = errors.New("no account data in document")
)

func ParseDataEncoding(s string) (DataEncoding, error) {
	switch e := DataEncoding(strings.ToLower(strings.TrimSpace(s))); e {
	case EncodingBase64, EncodingBase58, EncodingHex, EncodingBinary, EncodingJSON:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// DecodeAccountData turns an encoded account dump into raw bytes. Surrounding
// whitespace is ignored for the text encodings.
func DecodeAccountData(raw []byte, encoding DataEncoding) ([]byte, error) {
	if encoding == EncodingBinary {
		return raw, nil
	}
	if encoding == EncodingJSON {
		acc, err := AccountDataFromJSON(raw)
		if err != nil {
			return nil, err
		}
		return acc.Data, nil
	}

	text := string(bytes.TrimSpace(raw))
	switch encoding {
	case EncodingBase64:
		return base64.StdEncoding.DecodeString(text)
	case EncodingBase58:
		return base58.Decode(text)
	case EncodingHex:
		return hex.DecodeString(strings.TrimPrefix(text, "0x"))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
}

// RawAccount is an account loaded from a saved getAccountInfo response.
type RawAccount struct {
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte
}

// AccountDataFromJSON reads a getAccountInfo response, with or without the
// JSON-RPC envelope, or a bare account object.
func AccountDataFromJSON(doc []byte) (*RawAccount, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("invalid JSON document")
	}

	var account gjson.Result
	for _, path := range []string{"result.value", "value", "@this"} {
		if v := gjson.GetBytes(doc, path); v.IsObject() && v.Get("data").Exists() {
			account = v
			break
		}
	}
	if !account.Exists() {
		return nil, ErrNoAccountData
	}

	out := &RawAccount{Lamports: account.Get("lamports").Uint()}
	if owner := account.Get("owner").String(); owner != "" {
		pk, err := solana.PublicKeyFromBase58(owner)
		if err != nil {
			return nil, fmt.Errorf("invalid owner %q: %w", owner, err)
		}
		out.Owner = pk
	}

	data := account.Get("data")
	var (
		text     string
		encoding = EncodingBase58
	)
	switch {
	case data.IsArray():
		parts := data.Array()
		if len(parts) == 0 {
			return nil, ErrNoAccountData
		}
		text = parts[0].String()
		if len(parts) > 1 {
			encoding = DataEncoding(parts[1].String())
		}
	case data.Type == gjson.String:
		text = data.String()
	default:
		return nil, fmt.Errorf("%w: data is %s", ErrUnsupportedEncoding, data.Type)
	}
	if encoding != EncodingBase64 && encoding != EncodingBase58 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}

	raw, err := DecodeAccountData([]byte(text), encoding)
	if err != nil {
		return nil, err
	}
	out.Data = raw
	return out, nil
}
