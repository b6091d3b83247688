// Package stego hides and reveals text messages in PNG files using standard
// tEXt metadata chunks. Chunks are ancillary, so any PNG viewer renders the
// image unchanged; anyone who inspects the metadata can read the message.
package stego

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	chunkTEXT = "tEXt"
	chunkIHDR = "IHDR"

	// length + type before the data, CRC after it.
	chunkOverhead = 12
	ihdrDataLen   = 13
)

var (
	ErrNotPNG          = errors.New("not a PNG file")
	ErrMissingKeyword  = errors.New("keyword cannot be empty")
	ErrKeywordHasNUL   = errors.New("keyword cannot contain NUL")
	ErrTruncatedChunks = errors.New("truncated PNG chunk stream")
)

// Message is one keyword/text pair from a tEXt chunk.
type Message struct {
	Keyword string `json:"keyword"`
	Text    string `json:"text"`
}

// Hide returns a copy of png with a tEXt chunk carrying keyword and text
// inserted directly after the IHDR chunk.
func Hide(png []byte, keyword, text string) ([]byte, error) {
	if err := checkHeader(png); err != nil {
		return nil, err
	}
	if keyword == "" {
		return nil, ErrMissingKeyword
	}
	if strings.ContainsRune(keyword, 0) {
		return nil, ErrKeywordHasNUL
	}

	data := append(append([]byte(keyword), 0), []byte(text)...)
	chunk := make([]byte, 0, chunkOverhead+len(data))
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, chunkTEXT...)
	chunk = append(chunk, data...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(append([]byte(chunkTEXT), data...)))

	insertAt := len(pngSignature) + chunkOverhead + ihdrDataLen
	out := make([]byte, 0, len(png)+len(chunk))
	out = append(out, png[:insertAt]...)
	out = append(out, chunk...)
	out = append(out, png[insertAt:]...)
	return out, nil
}

// Reveal walks the chunk stream and collects every tEXt chunk. Chunks whose
// payload is not a keyword\0text pair are skipped.
func Reveal(png []byte) ([]Message, error) {
	if !bytes.HasPrefix(png, pngSignature) {
		return nil, ErrNotPNG
	}
	var msgs []Message
	pos := len(pngSignature)
	for pos+chunkOverhead <= len(png) {
		length := int(binary.BigEndian.Uint32(png[pos : pos+4]))
		end := pos + chunkOverhead + length
		if length < 0 || end > len(png) {
			return msgs, ErrTruncatedChunks
		}
		typ := string(png[pos+4 : pos+8])
		if typ == chunkTEXT {
			payload := png[pos+8 : pos+8+length]
			// An empty keyword is still a keyword\0text pair.
			if i := bytes.IndexByte(payload, 0); i >= 0 {
				msgs = append(msgs, Message{
					Keyword: string(payload[:i]),
					Text:    string(payload[i+1:]),
				})
			}
		}
		if typ == "IEND" {
			break
		}
		pos = end
	}
	return msgs, nil
}

func checkHeader(png []byte) error {
	if !bytes.HasPrefix(png, pngSignature) {
		return ErrNotPNG
	}
	minLen := len(pngSignature) + chunkOverhead + ihdrDataLen
	if len(png) < minLen {
		return fmt.Errorf("%w: missing IHDR", ErrNotPNG)
	}
	if string(png[len(pngSignature)+4:len(pngSignature)+8]) != chunkIHDR {
		return fmt.Errorf("%w: first chunk is not IHDR", ErrNotPNG)
	}
	if binary.BigEndian.Uint32(png[len(pngSignature):len(pngSignature)+4]) != ihdrDataLen {
		return fmt.Errorf("%w: unexpected IHDR length", ErrNotPNG)
	}
	return nil
}
