package argus

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// defaultGridCellSize suits drawables roughly 1-2 world units across.
const defaultGridCellSize = 2.0

// SpatialHashGrid is a broad-phase index over drawable ids, hashing the grid
// cells each world-space box overlaps. Queries return candidate ids only;
// exact tests are the caller's job.
type SpatialHashGrid struct {
	cellSize float32
	cells    map[uint64][]uint32
}

func NewSpatialHashGrid(cellSize float32) *SpatialHashGrid {
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]uint32),
	}
}

func (grid *SpatialHashGrid) Clear() {
	clear(grid.cells)
}

func (grid *SpatialHashGrid) Insert(id uint32, box AABB) {
	minX, maxX := grid.cellIndex(box.Min.X()), grid.cellIndex(box.Max.X())
	minY, maxY := grid.cellIndex(box.Min.Y()), grid.cellIndex(box.Max.Y())
	minZ, maxZ := grid.cellIndex(box.Min.Z()), grid.cellIndex(box.Max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				grid.cells[key] = append(grid.cells[key], id)
			}
		}
	}
}

func (grid *SpatialHashGrid) QueryAABB(box AABB) []uint32 {
	minX, maxX := grid.cellIndex(box.Min.X()), grid.cellIndex(box.Max.X())
	minY, maxY := grid.cellIndex(box.Min.Y()), grid.cellIndex(box.Max.Y())
	minZ, maxZ := grid.cellIndex(box.Min.Z()), grid.cellIndex(box.Max.Z())

	seen := make(map[uint32]struct{})
	var results []uint32

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				for _, id := range grid.cells[key] {
					if _, ok := seen[id]; !ok {
						seen[id] = struct{}{}
						results = append(results, id)
					}
				}
			}
		}
	}
	return results
}

// QueryRadius returns broad-phase candidates around a sphere, using the
// sphere's enclosing box. The grid stores ids only, so exact radius checks
// are left to the caller.
func (grid *SpatialHashGrid) QueryRadius(center mgl32.Vec3, radius float32) []uint32 {
	box := AABB{
		Min: center.Sub(mgl32.Vec3{radius, radius, radius}),
		Max: center.Add(mgl32.Vec3{radius, radius, radius}),
	}
	return grid.QueryAABB(box)
}

func (grid *SpatialHashGrid) cellIndex(pos float32) int {
	return int(math.Floor(float64(pos / grid.cellSize)))
}

func (grid *SpatialHashGrid) hashKey(x, y, z int) uint64 {
	// large primes for mixing
	const p1 = 73856093
	const p2 = 19349663
	const p3 = 83492791
	return uint64(x*p1 ^ y*p2 ^ z*p3)
}
