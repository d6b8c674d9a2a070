package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Config holds library grouping parameters.
type Config struct {
	NumGroups    int // number of clusters to create (default: 3)
	MinGroupSize int // smaller clusters become outliers
}

// DefaultConfig returns the recommended default configuration.
func DefaultConfig() Config {
	return Config{
		NumGroups:    3,
		MinGroupSize: 2,
	}
}

// TrackPoint is one generated track's position in feature space.
type TrackPoint struct {
	ID       uuid.UUID
	Mood     string
	Features Features
}

// Group is a cluster of generated tracks with similar sound.
type Group struct {
	Name     string
	TrackIDs []uuid.UUID
	Centroid Features
}

// pointObservation wraps a TrackPoint to implement the
// clusters.Observation interface.
type pointObservation struct {
	point  *TrackPoint
	coords clusters.Coordinates
}

func (o pointObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o pointObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

func coordinates(f Features) clusters.Coordinates {
	return clusters.Coordinates{f.Energy, f.Brightness, f.Tempo, f.Minor}
}

// GroupTracks clusters tracks by feature similarity with k-means.
// Clusters below MinGroupSize are returned as outlier IDs instead.
func GroupTracks(points []TrackPoint, cfg Config) ([]Group, []uuid.UUID, error) {
	if len(points) == 0 {
		return nil, nil, nil
	}

	if cfg.NumGroups <= 0 {
		cfg.NumGroups = DefaultConfig().NumGroups
	}

	// Fewer tracks than clusters: everything is an outlier.
	if len(points) < cfg.NumGroups {
		outliers := make([]uuid.UUID, len(points))
		for i := range points {
			outliers[i] = points[i].ID
		}
		return nil, outliers, nil
	}

	var obs clusters.Observations
	for i := range points {
		obs = append(obs, pointObservation{
			point:  &points[i],
			coords: coordinates(points[i].Features),
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumGroups)
	if err != nil {
		return nil, nil, fmt.Errorf("partitioning track library: %w", err)
	}

	var groups []Group
	var outliers []uuid.UUID

	for _, cluster := range result {
		var ids []uuid.UUID
		for _, o := range cluster.Observations {
			if po, ok := o.(pointObservation); ok {
				ids = append(ids, po.point.ID)
			}
		}

		if len(ids) < cfg.MinGroupSize {
			outliers = append(outliers, ids...)
			continue
		}

		centroid := Features{
			Energy:     cluster.Center[0],
			Brightness: cluster.Center[1],
			Tempo:      cluster.Center[2],
			Minor:      cluster.Center[3],
		}
		groups = append(groups, Group{
			Name:     groupName(centroid),
			TrackIDs: ids,
			Centroid: centroid,
		})
	}

	return groups, outliers, nil
}
