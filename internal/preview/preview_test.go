package preview

import (
	"errors"
	"reflect"
	"testing"
)

func TestOpenCommand(t *testing.T) {
	t.Parallel()

	url := "http://localhost:4000/v/1.mp4"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{"darwin", "open", []string{url}, false},
		{"linux", "xdg-open", []string{url}, false},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}, false},
		{"plan9", "", nil, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			name, args, err := openCommand(tt.goos, url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("openCommand error = %v, wantErr %v", err, tt.wantErr)
			}
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("openCommand = %s %v, want %s %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestLauncherOpenUsesStarter(t *testing.T) {
	var gotName string
	var gotArgs []string
	l := &Launcher{
		goos: "linux",
		start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}
	if err := l.Open("http://localhost:4000/v/1.mp4"); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if gotName != "xdg-open" || len(gotArgs) != 1 || gotArgs[0] != "http://localhost:4000/v/1.mp4" {
		t.Fatalf("unexpected invocation: %s %v", gotName, gotArgs)
	}
}

func TestLauncherOpenWrapsFailure(t *testing.T) {
	boom := errors.New("not found")
	l := &Launcher{goos: "darwin", start: func(string, ...string) error { return boom }}
	if err := l.Open("http://x/v.mp4"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestLauncherCopy(t *testing.T) {
	var copied string
	l := &Launcher{goos: "test", copy: func(text string) error {
		copied = text
		return nil
	}}
	if err := l.Copy("http://x/v.mp4"); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if copied != "http://x/v.mp4" {
		t.Fatalf("unexpected clipboard text: %q", copied)
	}
}
