package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/triviakit/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "text"},
		{name: "blank", content: "  \n\t", want: "text"},
		{name: "shebang", content: "#!/bin/bash\necho hi\n", want: "Shell"},
		{name: "using directive", content: "using System;\n\nclass A {}\n", want: langdetect.CSharp},
		{name: "file-scoped namespace", content: "namespace Acme.Tools;\n", want: langdetect.CSharp},
		{name: "auto property", content: "int Count { get; set; }", want: langdetect.CSharp},
		{name: "console", content: `Console.WriteLine("hi");`, want: langdetect.CSharp},
		{name: "public record", content: "public sealed record Point(int X, int Y);", want: langdetect.CSharp},
		{name: "doc comment", content: "/// <summary>Adds.</summary>\nint Add(int a, int b) => a + b;", want: langdetect.CSharp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestIsCSharp(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsCSharp([]byte("using System.Linq;\n")))
	assert.False(t, langdetect.IsCSharp([]byte("#!/usr/bin/env python3\nprint('x')\n")))
	assert.False(t, langdetect.IsCSharp(nil))
}

func TestIsCSharpPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"Program.cs", true},
		{"src/Models/User.cs", true},
		{"main.go", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.IsCSharpPath(tt.path))
		})
	}
}

func TestFenceLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want string
	}{
		{"csharp", "csharp"},
		{"cs title=Program.cs", "cs"},
		{"{.cs}", "cs"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.FenceLanguage(tt.info))
		})
	}
}

func TestIsCSharpAlias(t *testing.T) {
	t.Parallel()

	for _, info := range []string{"csharp", "C#", "cs"} {
		assert.True(t, langdetect.IsCSharpAlias(info), info)
	}
	for _, info := range []string{"go", "", "java"} {
		assert.False(t, langdetect.IsCSharpAlias(info), info)
	}
}

func TestShouldSkip(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.ShouldSkip("vendor/lib/a.cs", nil))
	assert.True(t, langdetect.ShouldSkip("node_modules/x/a.cs", nil))
	assert.False(t, langdetect.ShouldSkip("src/a.cs", nil))
	assert.False(t, langdetect.ShouldSkip("src/a.cs", []byte("class A {}\n")))
}
