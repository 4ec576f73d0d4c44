package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

type vec3Marshaler math.Vec3

func (v vec3Marshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	enc.AddFloat64("z", v.Z)
	return nil
}

type aabbMarshaler geom.AABB

func (b aabbMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("min", vec3Marshaler(b.Min)); err != nil {
		return err
	}
	return enc.AddObject("max", vec3Marshaler(b.Max))
}

type mat4Marshaler math.Mat4

func (m mat4Marshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range math.Mat4(m).Array() {
		enc.AppendFloat64(v)
	}
	return nil
}

// Vec3 returns a structured field for a vector.
func Vec3(key string, v math.Vec3) zap.Field {
	return zap.Object(key, vec3Marshaler(v))
}

// AABB returns a structured field for a bounding box.
func AABB(key string, b geom.AABB) zap.Field {
	return zap.Object(key, aabbMarshaler(b))
}

// Mat4 returns a structured field holding the sixteen row-major components.
func Mat4(key string, m math.Mat4) zap.Field {
	return zap.Array(key, mat4Marshaler(m))
}
