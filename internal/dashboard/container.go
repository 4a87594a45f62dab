package dashboard

import (
	"github.com/XavierBriggs/Janus/internal/render"
)

// Container names used by the UI routes
const (
	ContainerDate     = "date"
	ContainerTabs     = "tabs"
	ContainerSummary  = "summary"
	ContainerRecord   = "record"
	ContainerGames    = "games"
	ContainerBestBets = "best-bets"
	ContainerTrends   = "trends"
	ContainerCharts   = "charts"
)

// containerOrder is the order containers are republished on resync
var containerOrder = []string{
	ContainerDate,
	ContainerTabs,
	ContainerSummary,
	ContainerRecord,
	ContainerGames,
	ContainerBestBets,
	ContainerTrends,
	ContainerCharts,
}

var containerElements = map[string]string{
	ContainerDate:     render.DateElement,
	ContainerTabs:     render.TabsElement,
	ContainerSummary:  render.SummaryElement,
	ContainerRecord:   render.RecordElement,
	ContainerGames:    render.GamesElement,
	ContainerBestBets: render.BestBetsElement,
	ContainerTrends:   render.TrendsElement,
	ContainerCharts:   render.ChartsElement,
}

// container is one patchable region of the page.
// A fetch takes a token when issued; only the latest token may commit.
type container struct {
	name    string
	element string
	html    string
	issued  uint64
	applied uint64
	last    *request
}

func newContainers() map[string]*container {
	containers := make(map[string]*container, len(containerOrder))
	for _, name := range containerOrder {
		containers[name] = &container{name: name, element: containerElements[name]}
	}
	return containers
}

// current reports whether token is the latest issued for the container
func (c *container) current(token uint64) bool {
	return c.issued == token
}
