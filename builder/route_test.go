// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvrail/builder"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

type routeModFunc func(g *core.Graph, company string) error

func (f routeModFunc) ModifyRouteGraph(g *core.Graph, company string) error { return f(g, company) }

// RouteGraphSuite exercises BuildRouteGraph on the line map.
type RouteGraphSuite struct {
	suite.Suite
	m   *hexmap.Map
	mg  *core.Graph
}

func (s *RouteGraphSuite) SetupTest() {
	s.m = lineMap()
	g, err := builder.BuildMapGraph(s.m)
	s.Require().NoError(err)
	s.mg = g
}

func (s *RouteGraphSuite) TestStopsAtForeignFullCity() {
	g, err := builder.BuildRouteGraph(s.mg, s.m, "PRR", false)
	s.Require().NoError(err)

	s.Equal([]string{"A1.-1", "A1.0", "B1.-1", "B1.0", "B1.3", "C1.-1", "C1.3"}, g.VertexIDs())
	s.Equal(6, g.EdgeCount())

	c, _ := g.Vertex("C1.-1")
	s.True(c.Sink, "full city of another company")
	mc, _ := s.mg.Vertex("C1.-1")
	s.False(mc.Sink, "map graph untouched")
}

func (s *RouteGraphSuite) TestAddHome() {
	g, err := builder.BuildRouteGraph(s.mg, s.m, "PRR", true)
	s.Require().NoError(err)

	hq, err := g.Vertex(builder.HQID("PRR"))
	s.Require().NoError(err)
	s.True(hq.IsHQ())
	s.True(hq.Sink)
	e, ok := g.GetEdge(hq.ID, "A1.-1")
	s.Require().True(ok)
	s.False(e.Greedy)
	s.Equal(8, g.VertexCount())
	s.False(s.mg.HasVertex(hq.ID))
}

func (s *RouteGraphSuite) TestOwnTokenIsPassable() {
	g, err := builder.BuildRouteGraph(s.mg, s.m, "B&O", false)
	s.Require().NoError(err)
	s.Equal(10, g.VertexCount())

	a, _ := g.Vertex("A1.-1")
	s.True(a.Sink, "PRR fills A1")
	c, _ := g.Vertex("C1.-1")
	s.False(c.Sink)
}

func (s *RouteGraphSuite) TestWithOptimize() {
	g, err := builder.BuildRouteGraph(s.mg, s.m, "PRR", false, builder.WithOptimize())
	s.Require().NoError(err)
	s.Equal([]string{"A1.-1", "B1.-1", "C1.-1"}, g.VertexIDs())
	s.Equal(2, g.EdgeCount())
}

func (s *RouteGraphSuite) TestWithProtectedKeepsSide() {
	g, err := builder.BuildRouteGraph(s.mg, s.m, "PRR", false,
		builder.WithOptimize(), builder.WithProtected("B1.0", "Z9.-1"))
	s.Require().NoError(err)
	s.True(g.HasVertex("B1.0"))
	s.False(g.HasVertex("Z9.-1"))
	s.False(g.HasVertex("A1.0"))
	s.Subset(g.VertexIDs(), []string{"A1.-1", "B1.-1", "C1.-1"})

	e, err := g.EdgesOf("B1.0")
	s.Require().NoError(err)
	s.Len(e, 2)
}

func (s *RouteGraphSuite) TestRouteModifierSeesCompany() {
	var seen string
	cut := routeModFunc(func(g *core.Graph, company string) error {
		seen = company

		return g.RemoveVertex("B1.0")
	})
	g, err := builder.BuildRouteGraph(s.mg, s.m, "PRR", false, builder.WithRouteModifiers(cut))
	s.Require().NoError(err)
	s.Equal("PRR", seen)
	s.False(g.HasVertex("C1.-1"))
	s.True(s.mg.HasVertex("B1.0"))
}

func (s *RouteGraphSuite) TestNoTokens() {
	s.m.Companies = append(s.m.Companies, &hexmap.Company{Name: "NYC"})
	g, err := builder.BuildRouteGraph(s.mg, s.m, "NYC", true)
	s.Require().NoError(err)
	s.Equal(0, g.VertexCount())
}

func (s *RouteGraphSuite) TestErrors() {
	_, err := builder.BuildRouteGraph(s.mg, s.m, "Reading", false)
	s.ErrorIs(err, builder.ErrUnknownCompany)
	_, err = builder.BuildRouteGraph(nil, s.m, "PRR", false)
	s.ErrorIs(err, builder.ErrNilGraph)
	_, err = builder.BuildRouteGraph(s.mg, nil, "PRR", false)
	s.ErrorIs(err, builder.ErrNilMap)
}

func TestRouteGraphSuite(t *testing.T) {
	suite.Run(t, new(RouteGraphSuite))
}

func TestInitVertexForCompany(t *testing.T) {
	m := lineMap()
	g, err := builder.BuildMapGraph(m)
	require.NoError(t, err)

	require.NoError(t, builder.InitVertexForCompany(g, m, "PRR"))
	c, _ := g.Vertex("C1.-1")
	assert.True(t, c.Sink)

	require.NoError(t, builder.InitVertexForCompany(g, m, "B&O"))
	assert.False(t, c.Sink)

	assert.ErrorIs(t, builder.InitVertexForCompany(nil, m, "PRR"), builder.ErrNilGraph)
	assert.ErrorIs(t, builder.InitVertexForCompany(g, nil, "PRR"), builder.ErrNilMap)
}
