package game

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tankwar/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	World      WorldSettings      `yaml:"world"`
	Tank       TankSettings       `yaml:"tank"`
	Player     PlayerSettings     `yaml:"player"`
	Projectile ProjectileTemplate `yaml:"projectile"`
}

type WorldSettings struct {
	Gravity      float32 `yaml:"gravity"`
	MapFile      string  `yaml:"map_file"`
	MapWidth     int32   `yaml:"map_width"`
	MapHeight    int32   `yaml:"map_height"`
	MapDepth     int32   `yaml:"map_depth"`
	GroundHeight int32   `yaml:"ground_height"`
	TerrainSeed  int64   `yaml:"terrain_seed"`
	// HillHeight of zero keeps the generated map flat.
	HillHeight int32   `yaml:"hill_height"`
	FlatRadius float32 `yaml:"flat_radius"`
}

type TankSettings struct {
	StartingHealth int            `yaml:"starting_health"`
	HitRadius      float32        `yaml:"hit_radius"`
	Aiming         AimingSettings `yaml:"aiming"`
	Barrel         BarrelSettings `yaml:"barrel"`
	Turret         TurretSettings `yaml:"turret"`
}

type AimingSettings struct {
	RoundsLeft          int     `yaml:"rounds_left"`
	ReloadTimeInSeconds float64 `yaml:"reload_time_in_seconds"`
	LaunchSpeed         float32 `yaml:"launch_speed"`
	ProjectileTemplate  string  `yaml:"projectile_template"`
	// AimTolerance is the per component tolerance between barrel forward and aim direction.
	AimTolerance float32 `yaml:"aim_tolerance"`
	// LegacyFiringPriority lets the reload/aim checks overwrite OutOfAmmo on the same tick.
	LegacyFiringPriority bool `yaml:"legacy_firing_priority"`
}

type BarrelSettings struct {
	MaxDegreesPerSecond float32    `yaml:"max_degrees_per_second"`
	MinElevation        float32    `yaml:"min_elevation"`
	MaxElevation        float32    `yaml:"max_elevation"`
	MountOffset         mgl32.Vec3 `yaml:"mount_offset,flow"`
	MuzzleOffset        mgl32.Vec3 `yaml:"muzzle_offset,flow"`
	ModelFile           string     `yaml:"model_file"`
	MuzzleSocket        string     `yaml:"muzzle_socket"`
}

type TurretSettings struct {
	MaxDegreesPerSecond float32    `yaml:"max_degrees_per_second"`
	MountOffset         mgl32.Vec3 `yaml:"mount_offset,flow"`
}

type PlayerSettings struct {
	CrosshairXLocation float64    `yaml:"crosshair_x_location"`
	CrosshairYLocation float64    `yaml:"crosshair_y_location"`
	LineTraceRange     float32    `yaml:"line_trace_range"`
	ViewportWidth      int        `yaml:"viewport_width"`
	ViewportHeight     int        `yaml:"viewport_height"`
	CameraOffset       mgl32.Vec3 `yaml:"camera_offset,flow"`
	LookSensitivity    float32    `yaml:"look_sensitivity"`
	// FieldOfView is the vertical opening angle in degrees.
	FieldOfView float32 `yaml:"field_of_view"`
}

type ProjectileTemplate struct {
	Name     string  `yaml:"name"`
	Damage   int     `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
}

func DefaultConfig() Config {
	return Config{
		World: WorldSettings{
			Gravity:      9.81,
			MapWidth:     128,
			MapHeight:    32,
			MapDepth:     128,
			GroundHeight: 1,
			TerrainSeed:  42,
			HillHeight:   6,
			FlatRadius:   24,
		},
		Tank: TankSettings{
			StartingHealth: 100,
			HitRadius:      2,
			Aiming: AimingSettings{
				RoundsLeft:          3,
				ReloadTimeInSeconds: 3,
				LaunchSpeed:         40,
				ProjectileTemplate:  "Projectile",
				AimTolerance:        0.01,
			},
			Barrel: BarrelSettings{
				MaxDegreesPerSecond: 10,
				MinElevation:        0,
				MaxElevation:        40,
				MountOffset:         mgl32.Vec3{0.5, 0.3, 0},
				MuzzleOffset:        mgl32.Vec3{2, 0, 0},
				MuzzleSocket:        "Projectile",
			},
			Turret: TurretSettings{
				MaxDegreesPerSecond: 25,
				MountOffset:         mgl32.Vec3{0, 1.5, 0},
			},
		},
		Player: PlayerSettings{
			CrosshairXLocation: 0.5,
			CrosshairYLocation: 0.33333,
			LineTraceRange:     1000,
			ViewportWidth:      800,
			ViewportHeight:     600,
			CameraOffset:       mgl32.Vec3{-8, 5, 0},
			LookSensitivity:    0.1,
			FieldOfView:        60,
		},
		Projectile: ProjectileTemplate{
			Name:     "Projectile",
			Damage:   20,
			Lifetime: 10,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read config %s", filename)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", filename)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", filename)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	aiming := c.Tank.Aiming
	switch {
	case c.World.Gravity < 0:
		return errors.New("gravity must not be negative")
	case c.World.MapFile == "" && (c.World.MapWidth <= 0 || c.World.MapHeight <= 0 || c.World.MapDepth <= 0):
		return errors.Errorf("invalid map size %dx%dx%d", c.World.MapWidth, c.World.MapHeight, c.World.MapDepth)
	case c.World.MapFile == "" && int64(c.World.MapWidth)*int64(c.World.MapHeight)*int64(c.World.MapDepth) > voxel.MaxMapBlocks:
		return errors.Errorf("map size %dx%dx%d exceeds %d blocks", c.World.MapWidth, c.World.MapHeight, c.World.MapDepth, voxel.MaxMapBlocks)
	case c.World.HillHeight < 0 || c.World.FlatRadius < 0:
		return errors.New("hill height and flat radius must not be negative")
	case c.Tank.StartingHealth <= 0:
		return errors.New("starting health must be positive")
	case aiming.RoundsLeft < 0:
		return errors.New("rounds left must not be negative")
	case aiming.ReloadTimeInSeconds < 0:
		return errors.New("reload time must not be negative")
	case aiming.LaunchSpeed <= 0:
		return errors.New("launch speed must be positive")
	case aiming.AimTolerance < 0:
		return errors.New("aim tolerance must not be negative")
	case c.Tank.Barrel.MinElevation > c.Tank.Barrel.MaxElevation:
		return errors.Errorf("barrel elevation range [%0.1f, %0.1f] is empty", c.Tank.Barrel.MinElevation, c.Tank.Barrel.MaxElevation)
	case c.Player.CrosshairXLocation < 0 || c.Player.CrosshairXLocation > 1 ||
		c.Player.CrosshairYLocation < 0 || c.Player.CrosshairYLocation > 1:
		return errors.New("crosshair location must be a fraction of the viewport")
	case c.Player.LineTraceRange <= 0:
		return errors.New("line trace range must be positive")
	case c.Player.ViewportWidth <= 0 || c.Player.ViewportHeight <= 0:
		return errors.New("viewport size must be positive")
	case c.Player.FieldOfView <= 0 || c.Player.FieldOfView >= 180:
		return errors.Errorf("field of view %0.1f must be between 0 and 180 degrees", c.Player.FieldOfView)
	case c.Projectile.Name == "":
		return errors.New("projectile template needs a name")
	}
	return nil
}
