package rasterlab

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// fakeCompiler hands out sequential ids and fails any source containing
// "syntax error".
type fakeCompiler struct {
	next     uint32
	compiled []ShaderStage
	linked   [][]uint32
	deleted  []uint32
	linkFail bool
}

func (c *fakeCompiler) id() uint32 {
	c.next++
	return c.next
}

func (c *fakeCompiler) CompileShader(stage ShaderStage, source string) (uint32, bool, string) {
	c.compiled = append(c.compiled, stage)
	if strings.Contains(source, "syntax error") {
		return c.id(), false, "0:1(1): error: syntax error\x00"
	}
	return c.id(), true, ""
}

func (c *fakeCompiler) LinkProgram(shaders ...uint32) (uint32, bool, string) {
	c.linked = append(c.linked, shaders)
	if c.linkFail {
		return c.id(), false, "error: unresolved varying\n"
	}
	return c.id(), true, ""
}

func (c *fakeCompiler) DeleteShader(id uint32) {
	c.deleted = append(c.deleted, id)
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestBuildProgram(t *testing.T) {
	c := &fakeCompiler{}
	logger, buf := captureLogger()

	program := BuildProgram(c, DefaultShader, logger)
	if program != 3 {
		t.Errorf("expected program id 3, got %d", program)
	}
	if len(c.compiled) != 2 || c.compiled[0] != VertexStage || c.compiled[1] != FragmentStage {
		t.Errorf("unexpected compile order %v", c.compiled)
	}
	if len(c.linked) != 1 || len(c.linked[0]) != 2 || c.linked[0][0] != 1 || c.linked[0][1] != 2 {
		t.Errorf("unexpected link call %v", c.linked)
	}
	if len(c.deleted) != 2 || c.deleted[0] != 1 || c.deleted[1] != 2 {
		t.Errorf("stage objects not released: %v", c.deleted)
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("unexpected error log: %s", buf.String())
	}
}

func TestBuildProgramCompileFailure(t *testing.T) {
	c := &fakeCompiler{}
	logger, buf := captureLogger()
	src := ShaderSource{
		Name:     "broken",
		Vertex:   "#version 410 core\nsyntax error",
		Fragment: vertexColorFrag,
	}

	program := BuildProgram(c, src, logger)
	if program == 0 {
		t.Error("a program handle is returned even when compilation fails")
	}
	if len(c.linked) != 1 {
		t.Error("linking should still be attempted")
	}
	if len(c.deleted) != 2 {
		t.Errorf("both stage objects should be deleted, got %v", c.deleted)
	}

	out := buf.String()
	for _, want := range []string{"shader compilation failed", "shader=broken", "stage=vertex", "syntax error"} {
		if !strings.Contains(out, want) {
			t.Errorf("log is missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, `\x00`) {
		t.Errorf("info log should be trimmed: %s", out)
	}
	if strings.Contains(out, "stage=fragment") {
		t.Error("the fragment stage compiled and should not be reported")
	}
}

func TestBuildProgramLinkFailure(t *testing.T) {
	c := &fakeCompiler{linkFail: true}
	logger, buf := captureLogger()

	BuildProgram(c, FlatShader, logger)
	if !strings.Contains(buf.String(), "shader program linking failed") || !strings.Contains(buf.String(), "unresolved varying") {
		t.Errorf("link failure not logged: %s", buf.String())
	}
	if len(c.deleted) != 2 {
		t.Errorf("stage objects should be deleted after a failed link, got %v", c.deleted)
	}
}

func TestBuildProgramDefaultLogger(t *testing.T) {
	c := &fakeCompiler{}
	BuildProgram(c, ProjectedShader, nil)
	if len(c.linked) != 1 {
		t.Error("expected a link with the default logger")
	}
}

func TestEmbeddedShaders(t *testing.T) {
	for _, src := range []ShaderSource{DefaultShader, ProjectedShader, FlatShader} {
		for stage, text := range map[string]string{"vertex": src.Vertex, "fragment": src.Fragment} {
			if !strings.HasPrefix(text, "#version 410 core") {
				t.Errorf("%s %s shader does not target 4.1 core", src.Name, stage)
			}
		}
		for _, u := range src.Uniforms {
			if !strings.Contains(src.Vertex+src.Fragment, "uniform") || !strings.Contains(src.Vertex+src.Fragment, " "+u+";") {
				t.Errorf("%s declares uniform %q but its source does not", src.Name, u)
			}
		}
		if !strings.Contains(src.Vertex, "location = 0") {
			t.Errorf("%s vertex shader does not bind position to location 0", src.Name)
		}
		wantColor := src.Layout.Floats() == 6
		if got := strings.Contains(src.Vertex, "location = 1"); got != wantColor {
			t.Errorf("%s: color attribute binding %v, layout %s", src.Name, got, src.Layout.Name)
		}
	}
}

func TestShaderUses(t *testing.T) {
	if DefaultShader.Uses(UniformProjection) {
		t.Error("default shader has no projection")
	}
	if !FlatShader.Uses(UniformProjection) || !FlatShader.Uses(UniformColor) {
		t.Error("flat shader uses projection and color")
	}
	if VertexStage.String() != "vertex" || FragmentStage.String() != "fragment" {
		t.Error("unexpected stage names")
	}
}
