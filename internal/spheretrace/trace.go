package spheretrace

// TraceRay walks one primary ray through the scene for scene.MaxBounces
// bounces and returns the accumulated color, or the background when no
// bounce hit anything.
func TraceRay(scene *Scene, ray Ray) Color {
	var (
		color   Color
		hitAny  bool
		lastID  uint32
		hasLast bool
		stopped bool
	)

	for bounce := 0; bounce < scene.MaxBounces; bounce++ {
		sh, P, ok := scene.pick(ray, lastID, hasLast)
		if !ok {
			if Debug {
				logRay(Miss, 0, ray, Vector3{}, bounce)
			}
			if scene.Policy.StopOnMiss {
				stopped = true
				break
			}
			continue
		}
		if Debug {
			logRay(Hit, sh.ShapeID(), ray, P, bounce)
		}

		// Outward unit normal; P sits on the surface so it is non-zero for r > 0.
		N, _ := sh.Normal(P).Norm()
		D, ok := bounceDir(scene.Policy.Reflect, ray.Direction, N)
		if !ok && Debug {
			logRay(Degenerate, sh.ShapeID(), ray, P, bounce)
			DebugLogOnce("Zero reflected direction off shape %d at %+v, keeping %+v", sh.ShapeID(), P, ray.Direction)
		}
		incoming := ray
		ray = Ray{Origin: P, Direction: D}
		lastID, hasLast = sh.ShapeID(), true

		paint := sh.Paint()
		prev := paint
		if hitAny {
			prev = color
		}
		color = paint.Blend(prev)
		hitAny = true

		if Debug {
			logRay(Reflect, sh.ShapeID(), incoming, P, bounce)
		}
	}
	if Debug && !stopped {
		logRay(BounceLimit, 0, ray, Vector3{}, scene.MaxBounces)
	}

	if !hitAny {
		return scene.Background
	}
	return color
}

// bounceDir returns the normalized reflected direction. When the reflection
// is a zero vector the incoming direction is kept and ok is false.
func bounceDir(rule ReflectRule, D, N Vector3) (Vector3, bool) {
	R, ok := reflectDir(rule, D, N).Norm()
	if !ok {
		return D, false
	}
	return R, true
}
