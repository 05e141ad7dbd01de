package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/golang/mock/gomock"

	"go.llib.dev/collectivity/internal/mocks"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestLoadConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		args   = let.Var[[]string](s, func(t *testcase.T) []string { return nil })
		stderr = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
	)
	act := let.Act2(func(t *testcase.T) (Config, error) {
		return LoadConfig(args.Get(t), stderr.Get(t))
	})

	s.Before(func(t *testcase.T) {
		t.Setenv("COLLECTIVITY_BENCH_N", "")
		os.Unsetenv("COLLECTIVITY_BENCH_N")
		t.Setenv("COLLECTIVITY_BENCH_CONTAINERS", "")
		os.Unsetenv("COLLECTIVITY_BENCH_CONTAINERS")
	})

	s.Then("defaults select every container", func(t *testcase.T) {
		c, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, 1000000, c.N)
		assert.ContainsExactly(t, ContainerNames(), c.Containers)
	})

	s.When("environment variables are set", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			t.Setenv("COLLECTIVITY_BENCH_N", "42")
			t.Setenv("COLLECTIVITY_BENCH_CONTAINERS", "map,list")
		})

		s.Then("they override the defaults", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 42, c.N)
			assert.Equal(t, []string{"map", "list"}, c.Containers)
		})

		s.And("flags are given", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string {
				return []string{"--n", "7", "--containers", "slice"}
			})

			s.Then("flags take precedence", func(t *testcase.T) {
				c, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, 7, c.N)
				assert.Equal(t, []string{"slice"}, c.Containers)
			})
		})
	})

	s.When("a config file is given", func(s *testcase.Spec) {
		path := let.Var(s, func(t *testcase.T) string {
			path := filepath.Join(t.TempDir(), "bench.yaml")
			assert.NoError(t, os.WriteFile(path, []byte("n: 128\ncontainers: [deque, treemap]\nquiet: true\n"), 0600))
			return path
		})
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--config", path.Get(t)}
		})

		s.Then("its values are used", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 128, c.N)
			assert.Equal(t, []string{"deque", "treemap"}, c.Containers)
			assert.True(t, c.Quiet)
		})

		s.And("a flag is given as well", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string {
				return []string{"--config", path.Get(t), "-n", "3"}
			})

			s.Then("the flag overrides the file", func(t *testcase.T) {
				c, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, 3, c.N)
				assert.Equal(t, []string{"deque", "treemap"}, c.Containers)
			})
		})
	})

	s.When("the config file is missing", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}
		})

		s.Then("it fails with a config file error", func(t *testcase.T) {
			_, err := act(t)
			assert.True(t, errors.Is(err, ErrConfigFile))
		})
	})

	s.When("an unknown container is selected", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--containers", "map,btree"}
		})

		s.Then("it fails", func(t *testcase.T) {
			_, err := act(t)
			assert.True(t, errors.Is(err, ErrUnknownContainer))
		})
	})

	s.When("n is not positive", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"--n", "0"}
		})

		s.Then("it fails", func(t *testcase.T) {
			_, err := act(t)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	})
}

func TestBench(t *testing.T) {
	s := testcase.NewSpec(t)

	n := let.IntB(s, 1, 500)

	for _, name := range ContainerNames() {
		s.Test(name+" ends up with n elements", func(t *testcase.T) {
			var progressed int
			r, err := Bench(context.Background(), name, n.Get(t), func(delta int) { progressed += delta })
			assert.NoError(t, err)
			assert.Equal(t, name, r.Container)
			assert.Equal(t, n.Get(t), r.Len)
			assert.Equal(t, n.Get(t), progressed)
		})
	}

	s.Test("cancelled context stops the run", func(t *testcase.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Bench(ctx, "slice", n.Get(t), nil)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	s.Test("unknown container", func(t *testcase.T) {
		_, err := Bench(context.Background(), "btree", n.Get(t), nil)
		assert.True(t, errors.Is(err, ErrUnknownContainer))
	})
}

type mockContainer struct {
	*mocks.MockInsert[int, int]
	*mocks.MockLen
}

func TestFill(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctrl = let.Var(s, func(t *testcase.T) *gomock.Controller {
			return gomock.NewController(t)
		})
		container = let.Var(s, func(t *testcase.T) mockContainer {
			return mockContainer{
				MockInsert: mocks.NewMockInsert[int, int](ctrl.Get(t)),
				MockLen:    mocks.NewMockLen(ctrl.Get(t)),
			}
		})
		ctx = let.Var(s, func(t *testcase.T) context.Context {
			return context.Background()
		})
		n = let.IntB(s, 1, 42)
	)
	s.After(func(t *testcase.T) { ctrl.Get(t).Finish() })

	act := let.Act2(func(t *testcase.T) (Result, error) {
		return Fill(ctx.Get(t), "mock", container.Get(t), n.Get(t), nil)
	})

	s.Then("every index is inserted in order and the reported length is returned", func(t *testcase.T) {
		var calls []*gomock.Call
		for i := 0; i < n.Get(t); i++ {
			calls = append(calls, container.Get(t).MockInsert.EXPECT().Insert(i, i))
		}
		gomock.InOrder(calls...)
		length := t.Random.IntBetween(0, n.Get(t))
		container.Get(t).MockLen.EXPECT().Len().Return(length)

		r, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, "mock", r.Container)
		assert.Equal(t, length, r.Len)
	})

	s.When("the context is cancelled", func(s *testcase.Spec) {
		ctx.Let(s, func(t *testcase.T) context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx
		})

		s.Then("it stops after the first progress step without asking for the length", func(t *testcase.T) {
			container.Get(t).MockInsert.EXPECT().Insert(0, 0).Times(1)
			container.Get(t).MockLen.EXPECT().Len().Times(0)

			_, err := act(t)
			assert.True(t, errors.Is(err, context.Canceled))
		})
	})
}

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		noColor := color.NoColor
		color.NoColor = true
		t.Defer(func() { color.NoColor = noColor })
	})

	var (
		out  = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		logs = let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		conf = let.Var(s, func(t *testcase.T) Config {
			return Config{
				N:           t.Random.IntBetween(10, 100),
				Containers:  []string{"array", "map"},
				MetricsFile: filepath.Join(t.TempDir(), "bench.prom"),
				NoColor:     true,
			}
		})
	)
	act := let.Act(func(t *testcase.T) error {
		return Run(context.Background(), conf.Get(t), out.Get(t), nil, &logging.Logger{Out: logs.Get(t)})
	})

	s.Then("one line is printed per container", func(t *testcase.T) {
		assert.NoError(t, act(t))
		lines := strings.Split(strings.TrimSpace(out.Get(t).String()), "\n")
		assert.Equal(t, 2, len(lines))
		assert.True(t, strings.HasPrefix(lines[0], "array"))
		assert.True(t, strings.HasPrefix(lines[1], "map"))
		for _, line := range lines {
			assert.Contains(t, line, "inserted in")
		}
	})

	s.Then("the results are logged", func(t *testcase.T) {
		assert.NoError(t, act(t))
		assert.Contains(t, logs.Get(t).String(), "container filled")
	})

	s.Then("the metrics file is written", func(t *testcase.T) {
		assert.NoError(t, act(t))
		data, err := os.ReadFile(conf.Get(t).MetricsFile)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "collectivity_bench_insert_seconds")
		assert.Contains(t, string(data), `collectivity_bench_len{container="map"}`)
	})
}

func TestMainExitCodes(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		t.Setenv("COLLECTIVITY_BENCH_N", "10")
	})

	s.Test("success", func(t *testcase.T) {
		var stdout, stderr bytes.Buffer
		code := Main(context.Background(), []string{"--containers", "slice", "--no-color", "--quiet"}, &stdout, &stderr)
		assert.Equal(t, cli.ExitCodeOK, code)
		assert.Contains(t, stdout.String(), "len: 10")
	})

	s.Test("bad request", func(t *testcase.T) {
		var stdout, stderr bytes.Buffer
		code := Main(context.Background(), []string{"--containers", "btree", "--no-color"}, &stdout, &stderr)
		assert.Equal(t, cli.ExitCodeBadRequest, code)
		assert.Contains(t, stderr.String(), "ErrUnknownContainer")
	})

	s.Test("help", func(t *testcase.T) {
		var stdout, stderr bytes.Buffer
		code := Main(context.Background(), []string{"--help"}, &stdout, &stderr)
		assert.Equal(t, cli.ExitCodeOK, code)
		assert.Contains(t, stderr.String(), "Usage: collectivity-bench")
	})
}
