package lazy

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"gopkg.in/yaml.v3"
)

func TestGetEvaluatesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	l := New(func() int { calls++; return 42 })

	assert.False(t, l.IsEvaluated())
	assert.Equal(t, 0, calls)
	assert.Equal(t, "Lazy(?)", l.String())

	assert.Equal(t, 42, l.Get())
	assert.Equal(t, 42, l.Get())
	assert.Equal(t, 1, calls)
	assert.True(t, l.IsEvaluated())
	assert.Equal(t, "Lazy(42)", l.String())
}

func TestConcurrentFirstReads(t *testing.T) {
	t.Parallel()

	calls := atomic.NewInt32(0)
	l := New(func() *int {
		calls.Inc()
		v := 7
		return &v
	})

	const readers = 32
	results := make([]*int, readers)
	start := make(chan struct{})
	wg := &sync.WaitGroup{}
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = l.Get()
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestPanickingSupplier(t *testing.T) {
	t.Parallel()

	calls := 0
	l := New(func() int { calls++; panic("boom") })

	assert.PanicsWithValue(t, "boom", func() { l.Get() })
	assert.PanicsWithValue(t, "boom", func() { l.Get() })
	assert.Equal(t, 1, calls)
	assert.True(t, l.IsEvaluated())
}

func TestValue(t *testing.T) {
	t.Parallel()

	l := Value("ready")
	assert.True(t, l.IsEvaluated())
	assert.Equal(t, "ready", l.Get())
}

func TestMap(t *testing.T) {
	t.Parallel()

	calls := 0
	base := New(func() int { calls++; return 2 })
	doubled := Map(base, func(i int) int { return i * 2 })

	assert.Equal(t, 0, calls)
	assert.Equal(t, 4, doubled.Get())
	assert.Equal(t, 2, base.Get())
	assert.Equal(t, 1, calls)
}

type config struct {
	Name  string        `json:"name" yaml:"name"`
	Token *Lazy[string] `json:"token" yaml:"token"`
	Ports *Lazy[[]int]  `json:"ports" yaml:"ports"`
}

func TestJSONForcesEvaluation(t *testing.T) {
	t.Parallel()

	c := config{
		Name:  "svc",
		Token: New(func() string { return "secret" }),
		Ports: New(func() []int { return []int{80, 443} }),
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"svc","token":"secret","ports":[80,443]}`, string(data))
	assert.True(t, c.Token.IsEvaluated())

	var decoded config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Token.IsEvaluated())
	assert.Equal(t, "secret", decoded.Token.Get())
	assert.Equal(t, []int{80, 443}, decoded.Ports.Get())
}

func TestYAMLForcesEvaluation(t *testing.T) {
	t.Parallel()

	c := config{
		Name:  "svc",
		Token: New(func() string { return "secret" }),
		Ports: Value([]int{8080}),
	}

	data, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.YAMLEq(t, "name: svc\ntoken: secret\nports: [8080]\n", string(data))

	var decoded config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "secret", decoded.Token.Get())
	assert.Equal(t, []int{8080}, decoded.Ports.Get())
}

func TestUnmarshalIntoEvaluated(t *testing.T) {
	t.Parallel()

	l := Value(1)
	assert.ErrorIs(t, l.UnmarshalJSON([]byte("2")), ErrEvaluated)
	assert.Equal(t, 1, l.Get())
}
