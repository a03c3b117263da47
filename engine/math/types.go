package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A linear space RGBA colour. */
type LinearColor struct {
	R, G, B, A float32
}

/** @brief a 4x4 matrix, column major, as uploaded to the driver. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief A viewport rectangle plus its depth range.
 */
type Viewport struct {
	X, Y          float32
	Width, Height float32
	/** @brief Depth range, clamped to [0,1] when applied. */
	ZNear, ZFar float32
}

/**
 * @brief An integer rectangle, used by scissor tests.
 */
type Rect struct {
	X, Y          int32
	Width, Height int32
}
