package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCmd(t *testing.T, args ...string) (code int, out, errOut string) {
	t.Setenv("HOME", t.TempDir())
	var o, e bytes.Buffer
	code = run(args, &o, &e)
	return code, o.String(), e.String()
}

func TestDecodeText(t *testing.T) {
	a := assert.New(t)
	code, out, _ := runCmd(t, "decode", "c0490fdb")
	a.Equal(0, code)
	a.Equal(strings.Join([]string{
		"hex:      C0490FDB",
		"sign:     1",
		"exponent: 10000000",
		"mantissa: 10010010000111111011011",
		"class:    Normal",
		"value:    -(1.10010010000111111011011)₂ × 2¹",
		"decimal:  -3.1415927410125732",
		"exact:    -3.1415927410125732421875",
	}, "\n")+"\n", out)
}

func TestDecodeJSON(t *testing.T) {
	a := assert.New(t)
	code, out, _ := runCmd(t, "decode", "--output", "json", "7FF0000000000000")
	a.Equal(0, code)
	var m map[string]interface{}
	if a.NoError(json.Unmarshal([]byte(out), &m)) {
		a.Equal("Infinity", m["class"])
		a.Equal("Infinity", m["approx"])
		a.Equal("+∞", m["exact"])
	}
}

func TestDecodeFlip(t *testing.T) {
	a := assert.New(t)
	code, out, _ := runCmd(t, "decode", "--flip-sign", "--flip-mantissa", "0,1", "3F800000")
	a.Equal(0, code)
	a.Contains(out, "hex:      BFE00000\n")
	a.Contains(out, "decimal:  -1.75\n")

	code, _, errOut := runCmd(t, "decode", "--flip-exponent", "8", "3F800000")
	a.Equal(1, code)
	a.Contains(errOut, "bit index out of range")
}

func TestDecodeInvalid(t *testing.T) {
	a := assert.New(t)
	code, out, errOut := runCmd(t, "decode", "3F8000")
	a.Equal(1, code)
	a.Empty(out)
	a.Contains(errOut, "invalid hex length")

	code, out, errOut = runCmd(t, "decode", "3F80000X")
	a.Equal(1, code)
	a.Empty(out)
	a.Contains(errOut, "invalid hex character")

	code, _, _ = runCmd(t, "decode")
	a.Equal(1, code)
}

func TestEncode(t *testing.T) {
	a := assert.New(t)
	code, out, _ := runCmd(t, "encode", "1")
	a.Equal(0, code)
	a.Equal("number:   1\nsingle:   3F800000\ndouble:   3FF0000000000000\nstored:   1\n", out)

	code, out, _ = runCmd(t, "encode", "--", "-2.5")
	a.Equal(0, code)
	a.Contains(out, "single:   C0200000\n")
	a.Contains(out, "double:   C004000000000000\n")

	code, out, _ = runCmd(t, "--output=json", "encode", "0.1")
	a.Equal(0, code)
	var m map[string]interface{}
	if a.NoError(json.Unmarshal([]byte(out), &m)) {
		a.Equal("3DCCCCCD", m["hex32"])
		a.Equal("3FB999999999999A", m["hex64"])
		a.Equal(false, m["exact"])
	}

	code, out, errOut := runCmd(t, "encode", "1,5")
	a.Equal(1, code)
	a.Empty(out)
	a.Contains(errOut, "invalid decimal format")
}

func TestStep(t *testing.T) {
	a := assert.New(t)
	code, out, _ := runCmd(t, "step", "--down", "--count", "2", "00000002")
	a.Equal(0, code)
	a.Contains(out, "hex:      00000001\n")
	a.Contains(out, "hex:      00000000\n")
	a.Contains(out, "class:    Subnormal\n")
	a.Contains(out, "class:    Zero\n")

	code, _, errOut := runCmd(t, "step", "FFFFFFFFFFFFFFFF")
	a.Equal(1, code)
	a.Contains(errOut, "hex value at boundary")
}

func TestConfig(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if !a.NoError(ioutil.WriteFile(path, []byte("output: json\ndecimal_places: 3\n"), 0600)) {
		return
	}
	code, out, _ := runCmd(t, "--config", path, "decode", "3DCCCCCD")
	a.Equal(0, code)
	var m map[string]interface{}
	if a.NoError(json.Unmarshal([]byte(out), &m)) {
		a.Equal("0.1", m["exact"])
	}

	// flags override the file.
	code, out, _ = runCmd(t, "--config", path, "--output", "text", "decode", "3DCCCCCD")
	a.Equal(0, code)
	a.Contains(out, "exact:    0.1\n")

	code, _, _ = runCmd(t, "--config", filepath.Join(dir, "missing.yaml"), "decode", "3DCCCCCD")
	a.Equal(1, code)
}

func TestConfigEnv(t *testing.T) {
	a := assert.New(t)
	t.Setenv("IEEE754_DECIMAL_PLACES", "2")
	code, out, _ := runCmd(t, "decode", "3DCCCCCD")
	a.Equal(0, code)
	a.Contains(out, "exact:    0.1\n")
}

func TestConfigInvalid(t *testing.T) {
	a := assert.New(t)
	code, _, errOut := runCmd(t, "--output", "xml", "decode", "3F800000")
	a.Equal(1, code)
	a.Contains(errOut, `unknown output format \"xml\"`)

	code, _, _ = runCmd(t, "--log-level", "loud", "decode", "3F800000")
	a.Equal(1, code)
}

func TestDebugLog(t *testing.T) {
	a := assert.New(t)
	code, _, errOut := runCmd(t, "--log-level", "debug", "encode", "0.1")
	a.Equal(0, code)
	a.Contains(errOut, "Encoding")
	a.Contains(errOut, "is not exactly representable")
}
