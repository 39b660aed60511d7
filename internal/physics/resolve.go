package physics

import (
	"kinetic/internal/components"
	"kinetic/internal/vmath"
)

// correctionBias is the fraction of the penetration corrected per step;
// under-correcting avoids jitter from overshooting.
const correctionBias = 0.8

const groundedThreshold = 0.5

// ResolveCollision2D separates the pair and exchanges an impulse along
// the contact normal. Either body may be nil (a static collider), in
// which case it neither moves nor absorbs impulse. Returns false when
// nothing could be resolved (no collision, or both sides immovable).
//
// The info normal points from B toward A, so A corrects along +normal.
func ResolveCollision2D(info CollisionInfo2D, rbA, rbB *components.Rigidbody2D) bool {
	if !info.Collided {
		return false
	}

	var invA, invB float32
	if rbA != nil {
		invA = rbA.InvMass
	}
	if rbB != nil {
		invB = rbB.InvMass
	}
	totalInvMass := invA + invB
	if totalInvMass == 0 {
		return false
	}

	// Positional correction, weighted by inverse mass.
	correction := info.Normal.Scale(info.Penetration / totalInvMass * correctionBias)
	if rbA != nil {
		rbA.Position = rbA.Position.Add(correction.Scale(invA / totalInvMass))
	}
	if rbB != nil {
		rbB.Position = rbB.Position.Sub(correction.Scale(invB / totalInvMass))
	}

	// Impulse along the normal, skipped when already separating.
	var vA, vB vmath.Vector2
	if rbA != nil {
		vA = rbA.Velocity
	}
	if rbB != nil {
		vB = rbB.Velocity
	}
	velAlongNormal := vA.Sub(vB).Dot(info.Normal)
	if velAlongNormal <= 0 {
		// Combined restitution is the less bouncy of the two.
		eA, eB := float32(1), float32(1)
		if rbA != nil {
			eA = rbA.Restitution
		}
		if rbB != nil {
			eB = rbB.Restitution
		}
		e := eA
		if eB < e {
			e = eB
		}

		j := -(1 + e) * velAlongNormal / totalInvMass
		impulse := info.Normal.Scale(j)
		if rbA != nil {
			rbA.Velocity = rbA.Velocity.Add(impulse.Scale(invA))
		}
		if rbB != nil {
			rbB.Velocity = rbB.Velocity.Sub(impulse.Scale(invB))
		}
	}

	// Grounded flags: in the Y-down 2D world, up is -Y.
	if rbA != nil && info.Normal.Y < -groundedThreshold {
		rbA.IsGrounded = true
	}
	if rbB != nil && info.Normal.Y > groundedThreshold {
		rbB.IsGrounded = true
	}

	// Write corrected positions back to the owning scene objects.
	if info.A != nil && rbA != nil {
		info.A.SetPosition2D(rbA.Position)
	}
	if info.B != nil && rbB != nil {
		info.B.SetPosition2D(rbB.Position)
	}
	return true
}

// ResolveCollision3D is the 3D analogue. Grounded flags follow the Y-up
// convention.
func ResolveCollision3D(info CollisionInfo3D, rbA, rbB *components.Rigidbody3D) bool {
	if !info.Collided {
		return false
	}

	var invA, invB float32
	if rbA != nil {
		invA = rbA.InvMass
	}
	if rbB != nil {
		invB = rbB.InvMass
	}
	totalInvMass := invA + invB
	if totalInvMass == 0 {
		return false
	}

	correction := info.Normal.Scale(info.Penetration / totalInvMass * correctionBias)
	if rbA != nil {
		rbA.Position = rbA.Position.Add(correction.Scale(invA / totalInvMass))
	}
	if rbB != nil {
		rbB.Position = rbB.Position.Sub(correction.Scale(invB / totalInvMass))
	}

	var vA, vB vmath.Vector3
	if rbA != nil {
		vA = rbA.Velocity
	}
	if rbB != nil {
		vB = rbB.Velocity
	}
	velAlongNormal := vA.Sub(vB).Dot(info.Normal)
	if velAlongNormal <= 0 {
		eA, eB := float32(1), float32(1)
		if rbA != nil {
			eA = rbA.Restitution
		}
		if rbB != nil {
			eB = rbB.Restitution
		}
		e := eA
		if eB < e {
			e = eB
		}

		j := -(1 + e) * velAlongNormal / totalInvMass
		impulse := info.Normal.Scale(j)
		if rbA != nil {
			rbA.Velocity = rbA.Velocity.Add(impulse.Scale(invA))
		}
		if rbB != nil {
			rbB.Velocity = rbB.Velocity.Sub(impulse.Scale(invB))
		}
	}

	if rbA != nil && info.Normal.Y > groundedThreshold {
		rbA.IsGrounded = true
	}
	if rbB != nil && info.Normal.Y < -groundedThreshold {
		rbB.IsGrounded = true
	}

	if info.A != nil && rbA != nil {
		info.A.Position = rbA.Position
	}
	if info.B != nil && rbB != nil {
		info.B.Position = rbB.Position
	}
	return true
}
