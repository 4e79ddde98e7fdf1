package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/alglib/alglib/config"
	"github.com/alglib/alglib/constant"
	"github.com/alglib/alglib/filesystem"
	"github.com/alglib/alglib/key"
	"github.com/alglib/alglib/runner"
	"github.com/alglib/alglib/style"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type exitCode int

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			lo.Must0(sv.Replace(nil))
		} else {
			lo.Must0(f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(args ...string) (out string, code int) {
	var buf bytes.Buffer
	exit = func(c int) { panic(exitCode(c)) }

	defer func() {
		exit = os.Exit
		out = buf.String()
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	resetFlags(rootCmd)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return
}

func setup(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Setenv("ALGLIB_CONFIG_PATH", "/cfg")
	So(config.Setup(), ShouldBeNil)
	viper.Set(key.IconsVariant, "plain")
	style.Disable()
}

func TestRunCommand(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		setup(t)
		So(filesystem.API().WriteFile("/scripts/s.txt", []byte("push 1\npush 2\npop\npop\npop\n"), 0o644), ShouldBeNil)

		Convey("run --json reports every step", func() {
			out, code := execute("run", "/scripts/s.txt", "--container", "linked-stack", "--json")
			So(code, ShouldEqual, 0)

			var report runner.JsonReport
			So(json.Unmarshal([]byte(out), &report), ShouldBeNil)
			So(report.Container, ShouldEqual, runner.LinkedStack)
			So(report.Steps, ShouldHaveLength, 5)
			So(report.Failed, ShouldEqual, 1)
			So(report.Steps[4].Error, ShouldEqual, "EmptyError")
		})

		Convey("run --stop-on-error exits with status 2", func() {
			out, code := execute("run", "/scripts/s.txt", "--container", "array-stack", "--capacity", "1", "--stop-on-error", "--json")
			So(code, ShouldEqual, 2)

			var report runner.JsonReport
			So(json.Unmarshal([]byte(out), &report), ShouldBeNil)
			So(report.Stopped, ShouldBeTrue)
			So(report.Steps, ShouldHaveLength, 2)
			So(report.Steps[1].Error, ShouldEqual, "CapacityExceeded")
		})

		Convey("run --output writes the report to a file", func() {
			_, code := execute("run", "/scripts/s.txt", "--container", "vector", "--output", "/out/report.txt")
			So(code, ShouldEqual, 0)

			text := string(lo.Must(filesystem.API().ReadFile("/out/report.txt")))
			So(text, ShouldContainSubstring, "vector (capacity 4)")
			So(text, ShouldContainSubstring, "5 steps, 1 failure, 0 invalid lines")
		})

		Convey("run rejects an unknown container", func() {
			_, code := execute("run", "/scripts/s.txt", "--container", "stak")
			So(code, ShouldEqual, 1)
		})

		Convey("run fails on a missing script", func() {
			_, code := execute("run", "/scripts/missing.txt", "--container", "vector")
			So(code, ShouldEqual, 1)
		})

		Convey("run --schema prints the report schema", func() {
			out, code := execute("run", "--schema")
			So(code, ShouldEqual, 0)
			So(out, ShouldContainSubstring, `"steps"`)
		})
	})
}

func TestOpsCommand(t *testing.T) {
	Convey("ops lists a container's operations", t, func() {
		setup(t)

		out, code := execute("ops", "circular-queue")
		So(code, ShouldEqual, 0)
		So(out, ShouldContainSubstring, "enqueue <value>")
		So(out, ShouldContainSubstring, "full")

		Convey("and --filter narrows them", func() {
			out, _ := execute("ops", "linked-queue", "--filter", "deq")
			So(out, ShouldContainSubstring, "dequeue")
			So(out, ShouldNotContainSubstring, "enqueue")
		})
	})
}

func TestConfigCommand(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		setup(t)

		Convey("config set persists the value", func() {
			_, code := execute("config", "set", key.RunnerCapacity, "3")
			So(code, ShouldEqual, 0)
			So(lo.Must(filesystem.API().Exists("/cfg/alglib.toml")), ShouldBeTrue)

			out, _ := execute("config", "get", key.RunnerCapacity)
			So(out, ShouldEqual, "3\n")

			Convey("and config reset restores it", func() {
				_, code := execute("config", "reset", "--key", key.RunnerCapacity)
				So(code, ShouldEqual, 0)
				So(viper.GetInt(key.RunnerCapacity), ShouldEqual, 8)
			})
		})

		Convey("config set rejects values of the wrong type", func() {
			_, code := execute("config", "set", key.RunnerSnapshot, "maybe")
			So(code, ShouldEqual, 1)
		})

		Convey("config get rejects unknown keys", func() {
			_, code := execute("config", "get", "runner.capacty")
			So(code, ShouldEqual, 1)
		})

		Convey("config info --json describes the fields", func() {
			out, _ := execute("config", "info", "--json", "--key", key.LogsLevel)
			var fields []map[string]any
			So(json.Unmarshal([]byte(out), &fields), ShouldBeNil)
			So(fields, ShouldHaveLength, 1)
			So(fields[0]["default"], ShouldEqual, "info")
		})

		Reset(func() {
			viper.Set(key.RunnerCapacity, 8)
		})
	})
}

func TestInfoCommands(t *testing.T) {
	Convey("Given the in-memory config directory", t, func() {
		setup(t)

		Convey("version --short prints the version", func() {
			out, _ := execute("version", "--short")
			So(out, ShouldEqual, constant.Version+"\n")
		})

		Convey("where --logs prints the log directory", func() {
			out, _ := execute("where", "--logs")
			So(out, ShouldEqual, "/cfg/logs\n")
		})

		Convey("env lists every variable", func() {
			out, _ := execute("env")
			So(out, ShouldContainSubstring, "ALGLIB_RUNNER_CONTAINER=unset")
			So(out, ShouldContainSubstring, "ALGLIB_CONFIG_PATH=/cfg")

			out, _ = execute("env", "--set-only")
			So(out, ShouldNotContainSubstring, "ALGLIB_RUNNER_CONTAINER")
		})

		Convey("clear --logs removes the log directory", func() {
			So(filesystem.API().WriteFile("/cfg/logs/2026-10-18.log", []byte("x"), 0o644), ShouldBeNil)
			out, code := execute("clear", "--logs")
			So(code, ShouldEqual, 0)
			So(out, ShouldContainSubstring, "Log files cleared")
			So(lo.Must(filesystem.API().Exists("/cfg/logs/2026-10-18.log")), ShouldBeFalse)
		})
	})
}

func TestHistoryCommand(t *testing.T) {
	Convey("Given a replayed script", t, func() {
		setup(t)
		So(filesystem.API().WriteFile("/scripts/h.txt", []byte("enqueue 1\ndequeue\ndequeue\n"), 0o644), ShouldBeNil)
		_, code := execute("run", "/scripts/h.txt", "--container", "linked-queue", "--json")
		So(code, ShouldEqual, 0)

		Convey("history lists it", func() {
			out, _ := execute("history", "--json")
			var entries []map[string]any
			So(json.Unmarshal([]byte(out), &entries), ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0]["script"], ShouldEqual, "/scripts/h.txt")
			So(entries[0]["failed"], ShouldEqual, float64(1))
		})

		Convey("history --clear forgets it", func() {
			_, code := execute("history", "--clear")
			So(code, ShouldEqual, 0)
			out, _ := execute("history")
			So(out, ShouldContainSubstring, "no replays yet")
		})
	})
}
