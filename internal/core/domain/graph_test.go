package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/core/domain"
)

func addTask(t *testing.T, g *domain.Graph, name string, deps ...string) {
	t.Helper()
	err := g.AddTask(&domain.Task{
		Name:         domain.NewInternedString(name),
		Duration:     1,
		Resources:    domain.NewInternedStrings([]string{"P1"}),
		Dependencies: domain.NewInternedStrings(deps),
	})
	require.NoError(t, err)
}

func TestGraph_AddTask_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	addTask(t, g, "a")

	err := g.AddTask(&domain.Task{Name: domain.NewInternedString("a")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskAlreadyExists))
}

func TestGraph_GetTask(t *testing.T) {
	g := domain.NewGraph()
	addTask(t, g, "a")

	task, ok := g.GetTask(domain.NewInternedString("a"))
	require.True(t, ok)
	assert.Equal(t, "a", task.Name.String())

	_, ok = g.GetTask(domain.NewInternedString("missing"))
	assert.False(t, ok)
}

func TestGraph_Walk_PreservesInputOrder(t *testing.T) {
	g := domain.NewGraph()
	names := []string{"zeta", "alpha", "mid", "beta"}
	for _, n := range names {
		addTask(t, g, n)
	}

	var walked []string
	for task := range g.Walk() {
		walked = append(walked, task.Name.String())
	}
	assert.Equal(t, names, walked)
}

func TestGraph_Validate(t *testing.T) {
	t.Run("valid chain", func(t *testing.T) {
		g := domain.NewGraph()
		addTask(t, g, "a")
		addTask(t, g, "b", "a")
		addTask(t, g, "c", "a", "b")

		require.NoError(t, g.Validate())
	})

	t.Run("forward reference is valid at graph level", func(t *testing.T) {
		g := domain.NewGraph()
		addTask(t, g, "early", "late")
		addTask(t, g, "late")

		// Ordering is the scheduler's concern; the graph only checks
		// existence and acyclicity.
		require.NoError(t, g.Validate())
	})

	t.Run("missing dependency", func(t *testing.T) {
		g := domain.NewGraph()
		addTask(t, g, "a", "ghost")

		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMissingDependency))
	})

	t.Run("cycle", func(t *testing.T) {
		g := domain.NewGraph()
		addTask(t, g, "a", "c")
		addTask(t, g, "b", "a")
		addTask(t, g, "c", "b")

		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCycleDetected))
	})

	t.Run("empty graph", func(t *testing.T) {
		require.NoError(t, domain.NewGraph().Validate())
	})
}
