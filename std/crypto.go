/*
File : kodi-script-go/std/crypto.go
*/

// This file defines the hashing, encoding, and UUID builtin functions
// for the KodiScript language.
package std

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"

	"github.com/google/uuid"
)

var cryptoMethods = []*Builtin{
	{Name: "md5", Callback: md5Func},       // MD5 hex digest
	{Name: "sha1", Callback: sha1Func},     // SHA-1 hex digest
	{Name: "sha256", Callback: sha256Func}, // SHA-256 hex digest

	{Name: "base64Encode", Callback: base64Encode}, // Standard base64 encoding
	{Name: "base64Decode", Callback: base64Decode}, // Standard base64 decoding
	{Name: "urlEncode", Callback: urlEncode},       // Query escaping (space to +)
	{Name: "urlDecode", Callback: urlDecode},       // Query unescaping

	{Name: "randomUUID", Callback: randomUUID}, // RFC-4122 version 4 UUID
}

func md5Func(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `md5`. got=%d, want=1", len(args))
	}
	hash := md5.Sum([]byte(args[0].ToString()))
	return &String{Value: fmt.Sprintf("%x", hash)}
}

func sha1Func(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `sha1`. got=%d, want=1", len(args))
	}
	hash := sha1.Sum([]byte(args[0].ToString()))
	return &String{Value: fmt.Sprintf("%x", hash)}
}

func sha256Func(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `sha256`. got=%d, want=1", len(args))
	}
	hash := sha256.Sum256([]byte(args[0].ToString()))
	return &String{Value: fmt.Sprintf("%x", hash)}
}

func base64Encode(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `base64Encode`. got=%d, want=1", len(args))
	}
	return &String{Value: base64.StdEncoding.EncodeToString([]byte(args[0].ToString()))}
}

func base64Decode(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `base64Decode`. got=%d, want=1", len(args))
	}
	decoded, err := base64.StdEncoding.DecodeString(args[0].ToString())
	if err != nil {
		return createError("failed to decode base64: %v", err)
	}
	return &String{Value: string(decoded)}
}

func urlEncode(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `urlEncode`. got=%d, want=1", len(args))
	}
	return &String{Value: url.QueryEscape(args[0].ToString())}
}

func urlDecode(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 1 {
		return createError("wrong number of arguments to `urlDecode`. got=%d, want=1", len(args))
	}
	decoded, err := url.QueryUnescape(args[0].ToString())
	if err != nil {
		return createError("failed to decode url encoding: %v", err)
	}
	return &String{Value: decoded}
}

func randomUUID(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 0 {
		return createError("wrong number of arguments to `randomUUID`. got=%d, want=0", len(args))
	}
	return &String{Value: uuid.NewString()}
}
