package description

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

type urdfRobot struct {
	XMLName       xml.Name           `xml:"robot"`
	Name          string             `xml:"name,attr"`
	Joints        []urdfJoint        `xml:"joint"`
	Transmissions []urdfTransmission `xml:"transmission"`
	Controls      []urdfControlBlock `xml:"ros2_control"`
}

// urdfJoint is a robot-level joint; only its type and limits matter here.
type urdfJoint struct {
	Name  string     `xml:"name,attr"`
	Type  string     `xml:"type,attr"`
	Limit *urdfLimit `xml:"limit"`
}

type urdfLimit struct {
	Lower *string `xml:"lower,attr"`
	Upper *string `xml:"upper,attr"`
}

type urdfControlBlock struct {
	Name          string             `xml:"name,attr"`
	Transmissions []urdfTransmission `xml:"transmission"`
}

type urdfTransmission struct {
	Name      string         `xml:"name,attr"`
	Plugin    string         `xml:"plugin"`
	Type      string         `xml:"type"`
	Joints    []urdfTxJoint  `xml:"joint"`
	Actuators []urdfActuator `xml:"actuator"`
	Params    []urdfParam    `xml:"param"`
}

type urdfTxJoint struct {
	Name      string     `xml:"name,attr"`
	Role      string     `xml:"role,attr"`
	Reduction *string    `xml:"mechanical_reduction"`
	Camel     *string    `xml:"mechanicalReduction"`
	Offset    *string    `xml:"offset"`
	Limit     *urdfLimit `xml:"limit"`
}

type urdfActuator struct {
	Name      string  `xml:"name,attr"`
	Role      string  `xml:"role,attr"`
	Reduction *string `xml:"mechanical_reduction"`
	Camel     *string `xml:"mechanicalReduction"`
}

type urdfParam struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ParseURDF extracts transmissions from a URDF robot description, in
// document order: those directly under <robot> first, then those in each
// <ros2_control> block.
func ParseURDF(data []byte) ([]types.TransmissionInfo, error) {
	var robot urdfRobot
	if err := xml.Unmarshal(bytes.TrimSpace(data), &robot); err != nil {
		return nil, fmt.Errorf("parsing urdf: %w", err)
	}

	joints := make(map[string]urdfJoint, len(robot.Joints))
	for _, j := range robot.Joints {
		joints[j.Name] = j
	}

	var infos []types.TransmissionInfo
	for _, t := range robot.Transmissions {
		infos = append(infos, t.info(joints))
	}
	for _, c := range robot.Controls {
		for _, t := range c.Transmissions {
			infos = append(infos, t.info(joints))
		}
	}
	return infos, nil
}

func (t urdfTransmission) info(robotJoints map[string]urdfJoint) types.TransmissionInfo {
	typ := strings.TrimSpace(t.Plugin)
	if typ == "" {
		typ = strings.TrimSpace(t.Type)
	}
	info := types.TransmissionInfo{
		Name: t.Name,
		Type: typ,
	}

	for _, j := range t.Joints {
		ji := types.JointInfo{
			Name:                j.Name,
			Role:                j.Role,
			Offset:              raw(j.Offset),
			MechanicalReduction: raw(firstOf(j.Reduction, j.Camel)),
		}
		switch {
		case j.Limit != nil:
			ji.Limits = j.Limit.limits()
		case robotJoints[j.Name].Type == "continuous":
			ji.Limits = &types.Limits{Continuous: true}
		case robotJoints[j.Name].Limit != nil:
			ji.Limits = robotJoints[j.Name].Limit.limits()
		}
		info.Joints = append(info.Joints, ji)
	}

	for _, a := range t.Actuators {
		info.Actuators = append(info.Actuators, types.ActuatorInfo{
			Name:                a.Name,
			Role:                a.Role,
			MechanicalReduction: raw(firstOf(a.Reduction, a.Camel)),
		})
	}

	if len(t.Params) > 0 {
		info.Parameters = make(map[string]any, len(t.Params))
		for _, p := range t.Params {
			info.Parameters[p.Name] = strings.TrimSpace(p.Value)
		}
	}
	return info
}

func (l *urdfLimit) limits() *types.Limits {
	if l.Lower == nil && l.Upper == nil {
		return nil
	}
	return &types.Limits{Lower: raw(l.Lower), Upper: raw(l.Upper)}
}

func firstOf(ps ...*string) *string {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

// raw converts an optional element to a loader value; absent stays nil.
func raw(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
