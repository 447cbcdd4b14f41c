package jsonkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	out, err := Normalize([]byte(` { "a" : 1 ,
		"b" : [ true , null ] } `))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":[true,null]}`, string(out))

	_, err = Normalize([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestPrettify(t *testing.T) {
	out, err := Prettify([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n")
	assert.JSONEq(t, `{"a":1}`, string(out))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"ok":true}`)))
	assert.True(t, Valid([]byte(`[1,2,3]`)))
	assert.False(t, Valid([]byte(`{"nope"`)))
}

func TestGet(t *testing.T) {
	doc := []byte(`{"user":{"name":"claw","tags":["a","b"]},"n":3}`)

	name, err := Get(doc, "user.name")
	require.NoError(t, err)
	assert.Equal(t, `"claw"`, string(name))

	tag, err := Get(doc, "user.tags.1")
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(tag))

	n, err := Get(doc, "n")
	require.NoError(t, err)
	assert.Equal(t, "3", string(n))
}

func TestGetErrors(t *testing.T) {
	doc := []byte(`{"a":[1],"s":"x"}`)

	_, err := Get(doc, "missing")
	assert.Error(t, err)

	_, err = Get(doc, "a.notanindex")
	assert.Error(t, err)

	_, err = Get(doc, "a.5")
	assert.Error(t, err)

	_, err = Get(doc, "s.deeper")
	assert.Error(t, err)
}

func TestNormalizeBatch(t *testing.T) {
	docs := [][]byte{
		[]byte(`{ "a": 1 }`),
		[]byte(`[ 1, 2 ]`),
	}

	out, err := NormalizeBatch(docs)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, `{"a":1}`, string(out[0]))
	assert.JSONEq(t, `[1,2]`, string(out[1]))

	_, err = NormalizeBatch([][]byte{[]byte(`ok`), []byte(`{"fine":1}`)})
	assert.Error(t, err, "one invalid document fails the batch")
}
