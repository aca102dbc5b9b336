// Package transmission maps actuator-space samples (motor position, velocity
// and effort) to joint-space samples and back, for the mechanical topologies
// a joint is commonly driven through:
//
//   - Simple: one actuator, one joint, a scalar reduction and an offset.
//   - Differential: two actuators, two joints, coupled through sum and
//     difference of the actuator motions.
//   - FourBarLinkage: two actuators, two joints, where the second joint is
//     carried by the first and picks up a cross term.
//
// Transmissions are built once by a Loader from a types.TransmissionInfo and
// are immutable afterwards. The six conversion methods read one slice and
// write the other; they do not allocate, lock, or return errors, so they are
// safe to call from a control loop and from several goroutines at once as
// long as each goroutine uses its own buffers.
package transmission
