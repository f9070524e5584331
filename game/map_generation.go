package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/engine/voxel"
	"github.com/ojrac/opensimplex-go"
)

const (
	hillNoiseScale    = 24.0
	foliageNoiseScale = 6.0
	foliageThreshold  = 0.55
)

// Battlefield generates rolling hills around a flat arena in the middle of the map.
type Battlefield struct {
	settings     WorldSettings
	hillNoise    opensimplex.Noise
	foliageNoise opensimplex.Noise
}

func NewBattlefield(settings WorldSettings) Battlefield {
	return Battlefield{
		settings:     settings,
		hillNoise:    opensimplex.New(settings.TerrainSeed),
		foliageNoise: opensimplex.New(settings.TerrainSeed + 1),
	}
}

func (b Battlefield) Generate() *voxel.Map {
	s := b.settings
	m := voxel.NewMap(s.MapWidth, s.MapHeight, s.MapDepth)
	m.FillGround(s.GroundHeight, voxel.GROUND)
	if s.HillHeight <= 0 {
		return m
	}
	center := mgl32.Vec2{float32(s.MapWidth) / 2, float32(s.MapDepth) / 2}
	rockLine := s.GroundHeight + s.HillHeight*2/3

	for x := int32(0); x < s.MapWidth; x++ {
		for z := int32(0); z < s.MapDepth; z++ {
			hillHeight := b.hillHeightAt(x, z, center)
			top := s.GroundHeight + hillHeight
			for y := s.GroundHeight; y < top && y < s.MapHeight; y++ {
				blockID := voxel.GROUND
				if y >= rockLine {
					blockID = voxel.ROCK
				}
				m.SetBlock(x, y, z, voxel.NewBlock(blockID))
			}
			if hillHeight > 0 && top < s.MapHeight && b.hasFoliage(x, z) {
				m.SetBlock(x, top, z, voxel.NewBlock(voxel.FOLIAGE))
			}
		}
	}
	return m
}

// hillHeightAt is zero inside the flat radius and ramps up to the full hill
// height over the next flat radius.
func (b Battlefield) hillHeightAt(x, z int32, center mgl32.Vec2) int32 {
	distance := mgl32.Vec2{float32(x), float32(z)}.Sub(center).Len()
	if distance < b.settings.FlatRadius {
		return 0
	}
	falloff := float32(1)
	if b.settings.FlatRadius > 0 {
		falloff = util.Clamp32((distance-b.settings.FlatRadius)/b.settings.FlatRadius, 0, 1)
	}
	noise := (b.hillNoise.Eval2(float64(x)/hillNoiseScale, float64(z)/hillNoiseScale) + 1) / 2
	return int32(float32(noise) * float32(b.settings.HillHeight) * falloff)
}

func (b Battlefield) hasFoliage(x, z int32) bool {
	return b.foliageNoise.Eval2(float64(x)/foliageNoiseScale, float64(z)/foliageNoiseScale) > foliageThreshold
}
