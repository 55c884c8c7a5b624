package opentrackio_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opentrackio "github.com/reoring/opentrackio"
)

func TestIssues_Error(t *testing.T) {
	var none opentrackio.Issues
	assert.Equal(t, "", none.Error())

	iss := opentrackio.Issues{
		{Path: "/a", Code: opentrackio.CodeRequired},
		{Path: "/b", Code: opentrackio.CodeInvalidType},
		{Path: "/c", Code: opentrackio.CodePattern},
		{Path: "/d", Code: opentrackio.CodeTooBig},
	}
	assert.Equal(t, "required at /a; invalid_type at /b; pattern at /c; ... (total 4)", iss.Error())
	assert.Len(t, iss.WithCode(opentrackio.CodePattern), 1)
	assert.Empty(t, iss.WithCode(opentrackio.CodeUnknownKey))

	wrapped := fmt.Errorf("load: %w", iss[:1])
	got, ok := opentrackio.AsIssues(wrapped)
	require.True(t, ok)
	assert.Equal(t, "/a", got[0].Path)

	_, ok = opentrackio.AsIssues(nil)
	assert.False(t, ok)
	_, ok = opentrackio.AsIssues(fmt.Errorf("plain"))
	assert.False(t, ok)

	assert.Len(t, opentrackio.AppendIssues(nil, iss[0]), 1)
}

func TestPathRef(t *testing.T) {
	p := opentrackio.Root().Field("static").Field("a/b~c").Index(2)
	assert.Equal(t, "/static/a~1b~0c/2", p.Pointer())
	assert.Equal(t, "static/a/b~c/2", p.Name())
	assert.Equal(t, "/", opentrackio.Root().Pointer())

	back := opentrackio.At(p.Pointer())
	assert.Equal(t, p.Pointer(), back.Pointer())
	assert.Equal(t, "/", opentrackio.At("").Pointer())
	assert.Equal(t, "/x", opentrackio.Root().Field("").Field("x").Pointer())
}

func TestPathRef_Issue(t *testing.T) {
	p := opentrackio.Root().Field("static").Field("camera").Field("shutterAngle")
	iss := p.Issue(opentrackio.CodeTooBig, map[string]string{"min": "0", "max": "360"}, "max", 360.0, "dangling")
	assert.Equal(t, "/static/camera/shutterAngle", iss.Path)
	assert.Equal(t, "field: static/camera/shutterAngle is outside the expected range 0 - 360", iss.Message)
	assert.Equal(t, map[string]any{"max": 360.0}, iss.Params)

	at := opentrackio.IssueAt(p, opentrackio.CodeInvalidType, map[string]string{"type": "double"}, map[string]any{"got": "string"})
	assert.Equal(t, "field: static/camera/shutterAngle isn't of type: double", at.Message)
	assert.Equal(t, "string", at.Params["got"])
}
