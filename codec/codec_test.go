package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravel/codec"
	"github.com/katalvlaran/gravel/core"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", core.Attributes{"label": "alpha"}))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddDirectedEdgeWithKey("ab", "a", "b", core.Attributes{"kind": "link"}))
	require.NoError(t, g.AddUndirectedEdgeWithKey("ba", "b", "a", nil))
	return g
}

func TestMarshalUnmarshalAllFormats(t *testing.T) {
	for _, f := range []codec.Format{codec.JSON, codec.YAML, codec.MsgPack} {
		t.Run(f.String(), func(t *testing.T) {
			require := require.New(t)
			src := fixture(t)

			data, err := codec.Marshal(src, f)
			require.NoError(err)
			require.NotEmpty(data)

			dst, err := codec.Unmarshal(data, f)
			require.NoError(err)
			require.Equal(src.Order(), dst.Order())
			require.Equal(src.Size(), dst.Size())
			require.Equal(src.Nodes(), dst.Nodes())
			require.Equal(src.Edges(), dst.Edges())
			require.Equal(src.Type(), dst.Type())

			require.True(dst.HasDirectedEdge("a", "b"))
			require.True(dst.HasUndirectedEdge("a", "b"))
			require.False(dst.HasDirectedEdge("b", "a"))

			info, err := dst.Node("a")
			require.NoError(err)
			require.Equal("alpha", info.Attributes["label"])
			einfo, err := dst.Edge("ab")
			require.NoError(err)
			require.Equal("link", einfo.Attributes["kind"])
		})
	}
}

func TestDecodePreservesOptions(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph(core.WithType(core.Directed), core.WithMulti(), core.WithSelfLoops(false))
	require.NoError(g.AddNode("a", nil))

	data, err := codec.Marshal(g, codec.JSON)
	require.NoError(err)
	s, err := codec.Decode(data, codec.JSON)
	require.NoError(err)
	require.Equal("directed", s.Options.Type)
	require.True(s.Options.Multi)
	require.False(s.Options.AllowSelfLoops)

	dst, err := core.FromSerialized(s)
	require.NoError(err)
	require.Equal(core.Directed, dst.Type())
	require.True(dst.Multi())
	require.False(dst.AllowsSelfLoops())
}

func TestUnknownFormat(t *testing.T) {
	require := require.New(t)
	_, err := codec.Encode(&core.SerializedGraph{}, codec.Format(99))
	require.ErrorIs(err, codec.ErrUnknownFormat)
	require.ErrorIs(err, core.ErrInvalidArgument)
	_, err = codec.Decode([]byte("{}"), codec.Format(99))
	require.ErrorIs(err, codec.ErrUnknownFormat)
}

func TestUnmarshalRunsGraphValidation(t *testing.T) {
	require := require.New(t)
	payload := []byte(`{
		"options": {"type": "directed", "multi": false, "allowSelfLoops": true},
		"nodes": [{"key": "a"}],
		"edges": [{"key": "dangling", "source": "a", "target": "ghost"}]
	}`)
	_, err := codec.Unmarshal(payload, codec.JSON)
	require.ErrorIs(err, core.ErrNodeNotFound, "decoded edges still pass the validated add path")
}

func TestDecodeMalformedInput(t *testing.T) {
	require := require.New(t)
	_, err := codec.Decode([]byte("{not json"), codec.JSON)
	require.Error(err)
	_, err = codec.Decode([]byte("\x00\xff garbage"), codec.MsgPack)
	require.Error(err)
}
