package pkg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDataDirs(t *testing.T) {
	convey.Convey("unset or empty falls back to defaults", t, func() {
		convey.So(DataDirs(""), convey.ShouldResemble, []string{"/usr/local/share", "/usr/share"})
		convey.So(DataDirs("::"), convey.ShouldResemble, []string{"/usr/local/share", "/usr/share"})
	})

	convey.Convey("colon separated list keeps order", t, func() {
		convey.So(DataDirs("/a:/b::/c"), convey.ShouldResemble, []string{"/a", "/b", "/c"})
	})

	convey.Convey("defaults are not aliased", t, func() {
		d := DataDirs("")
		d[0] = "/changed"
		convey.So(DefaultDataDirs[0], convey.ShouldEqual, "/usr/local/share")
	})
}

func TestDataHome(t *testing.T) {
	convey.Convey("absolute XDG_DATA_HOME wins", t, func() {
		d, ok := DataHome("/data", "/home/u")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(d, convey.ShouldEqual, "/data")
	})

	convey.Convey("relative or empty XDG_DATA_HOME uses HOME", t, func() {
		d, ok := DataHome("rel", "/home/u")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(d, convey.ShouldEqual, "/home/u/.local/share")
	})

	convey.Convey("no home at all", t, func() {
		_, ok := DataHome("", "")
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("application dirs", t, func() {
		convey.So(ApplicationDirs([]string{"/a", "/b"}, "/h"), convey.ShouldResemble,
			[]string{"/a/applications", "/b/applications", "/h/applications"})
		convey.So(ApplicationDirs([]string{"/a"}, ""), convey.ShouldResemble, []string{"/a/applications"})
	})
}

func TestCollectDesktopFiles(t *testing.T) {
	convey.Convey("recursive walk skips links and other files", t, func() {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\n")
		writeFile(t, filepath.Join(root, "sub", "deep", "b.desktop"), "[Desktop Entry]\n")
		writeFile(t, filepath.Join(root, "readme.txt"), "x")
		writeFile(t, filepath.Join(root, "sub", "c.desktop.bak"), "x")

		outside := t.TempDir()
		writeFile(t, filepath.Join(outside, "linked", "d.desktop"), "[Desktop Entry]\n")
		convey.So(os.Symlink(filepath.Join(outside, "linked"), filepath.Join(root, "linkdir")), convey.ShouldBeNil)
		convey.So(os.Symlink(filepath.Join(outside, "linked", "d.desktop"), filepath.Join(root, "e.desktop")), convey.ShouldBeNil)

		files := CollectDesktopFiles(root)
		convey.So(files, convey.ShouldResemble, []string{
			filepath.Join(root, "a.desktop"),
			filepath.Join(root, "sub", "deep", "b.desktop"),
		})
	})

	convey.Convey("a linked root is still walked", t, func() {
		target := t.TempDir()
		writeFile(t, filepath.Join(target, "x.desktop"), "")
		link := filepath.Join(t.TempDir(), "applications")
		convey.So(os.Symlink(target, link), convey.ShouldBeNil)
		convey.So(CollectDesktopFiles(link), convey.ShouldResemble, []string{filepath.Join(link, "x.desktop")})
	})

	convey.Convey("missing root yields nothing", t, func() {
		convey.So(CollectDesktopFiles(filepath.Join(t.TempDir(), "nope")), convey.ShouldBeEmpty)
	})

	convey.Convey("several roots in order", t, func() {
		a, b := t.TempDir(), t.TempDir()
		writeFile(t, filepath.Join(a, "x.desktop"), "")
		writeFile(t, filepath.Join(b, "y.desktop"), "")
		convey.So(DiscoverInDirs([]string{b, a}), convey.ShouldResemble, []string{
			filepath.Join(b, "y.desktop"),
			filepath.Join(a, "x.desktop"),
		})
	})
}

func TestLoadEntries(t *testing.T) {
	convey.Convey("good files load, bad ones become diagnostics", t, func() {
		root := t.TempDir()
		good := filepath.Join(root, "good.desktop")
		bad := filepath.Join(root, "bad.desktop")
		missing := filepath.Join(root, "missing.desktop")
		writeFile(t, good, "[Desktop Entry]\nName=Good\n")
		writeFile(t, bad, "[Desktop Entry\nName=Bad\n")

		loaded, diags, err := LoadEntries(context.Background(), []string{bad, good, missing}, 2)
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(loaded), convey.ShouldEqual, 1)
		convey.So(loaded[0].Path, convey.ShouldEqual, good)
		name, _ := loaded[0].Entry.Get("Name")
		convey.So(name, convey.ShouldEqual, "Good")

		convey.So(len(diags), convey.ShouldEqual, 2)
		convey.So(diags[0].Path, convey.ShouldEqual, bad)
		convey.So(diags[0].Code, convey.ShouldEqual, DiagnosticParseSkipped)
		convey.So(diags[1].Path, convey.ShouldEqual, missing)
		convey.So(diags[1].Code, convey.ShouldEqual, DiagnosticReadFailed)
	})

	convey.Convey("cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := LoadEntries(ctx, []string{"/nonexistent.desktop"}, 0)
		convey.So(err, convey.ShouldEqual, context.Canceled)
	})
}

func TestFileOperate(t *testing.T) {
	convey.Convey("exist and read", t, func() {
		p := filepath.Join(t.TempDir(), "f")
		ok, err := CheckFileExist(p)
		convey.So(err, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeFalse)

		writeFile(t, p, "hello")
		ok, _ = CheckFileExist(p)
		convey.So(ok, convey.ShouldBeTrue)

		s, err := ReadTextFile(p)
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "hello")
	})
}
