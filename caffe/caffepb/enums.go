package caffepb

import (
	"fmt"

	proto "github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Enum descriptors are built from their schema at init so that the text
// format reads and writes value names (pool: MAX) rather than numbers.
// Each enum lives in a file whose package is its parent message, which keeps
// the C++-scoped value names (MAX in both PoolMethod and EltwiseOp) apart.
func enumDescriptor(pkg string, name string, values ...string) protoreflect.EnumDescriptor {
	enum := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i, value := range values {
		enum.Value = append(enum.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(value),
			Number: proto.Int32(int32(i)),
		})
	}
	file, err := protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:     proto.String(fmt.Sprintf("caffepb/%s.%s.proto", pkg, name)),
		Package:  proto.String(pkg),
		Syntax:   proto.String("proto2"),
		EnumType: []*descriptorpb.EnumDescriptorProto{enum},
	}, nil)
	if err != nil {
		panic(fmt.Errorf("enum %s.%s: %v", pkg, name, err))
	}
	return file.Enums().Get(0)
}

var (
	phaseDesc             = enumDescriptor("caffe", "Phase", "TRAIN", "TEST")
	normalizationModeDesc = enumDescriptor("caffe.LossParameter", "NormalizationMode", "FULL", "VALID", "BATCH_SIZE", "NONE")
	eltwiseOpDesc         = enumDescriptor("caffe.EltwiseParameter", "EltwiseOp", "PROD", "SUM", "MAX")
	poolMethodDesc        = enumDescriptor("caffe.PoolingParameter", "PoolMethod", "MAX", "AVE", "STOCHASTIC")
)

type enumType struct {
	desc protoreflect.EnumDescriptor
	new  func(n protoreflect.EnumNumber) protoreflect.Enum
}

func (t enumType) New(n protoreflect.EnumNumber) protoreflect.Enum { return t.new(n) }
func (t enumType) Descriptor() protoreflect.EnumDescriptor         { return t.desc }

func enumName(desc protoreflect.EnumDescriptor, n protoreflect.EnumNumber) string {
	if value := desc.Values().ByNumber(n); value != nil {
		return string(value.Name())
	}
	return fmt.Sprintf("%d", n)
}

type Phase int32

const (
	Phase_TRAIN Phase = 0
	Phase_TEST  Phase = 1
)

func (x Phase) Enum() *Phase {
	p := new(Phase)
	*p = x
	return p
}
func (x Phase) String() string                        { return enumName(phaseDesc, x.Number()) }
func (Phase) Descriptor() protoreflect.EnumDescriptor { return phaseDesc }
func (x Phase) Number() protoreflect.EnumNumber       { return protoreflect.EnumNumber(x) }
func (Phase) Type() protoreflect.EnumType {
	return enumType{phaseDesc, func(n protoreflect.EnumNumber) protoreflect.Enum { return Phase(n) }}
}

type LossParameter_NormalizationMode int32

const (
	LossParameter_FULL       LossParameter_NormalizationMode = 0
	LossParameter_VALID      LossParameter_NormalizationMode = 1
	LossParameter_BATCH_SIZE LossParameter_NormalizationMode = 2
	LossParameter_NONE       LossParameter_NormalizationMode = 3
)

func (x LossParameter_NormalizationMode) Enum() *LossParameter_NormalizationMode {
	p := new(LossParameter_NormalizationMode)
	*p = x
	return p
}
func (x LossParameter_NormalizationMode) String() string {
	return enumName(normalizationModeDesc, x.Number())
}
func (LossParameter_NormalizationMode) Descriptor() protoreflect.EnumDescriptor {
	return normalizationModeDesc
}
func (x LossParameter_NormalizationMode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}
func (LossParameter_NormalizationMode) Type() protoreflect.EnumType {
	return enumType{normalizationModeDesc, func(n protoreflect.EnumNumber) protoreflect.Enum {
		return LossParameter_NormalizationMode(n)
	}}
}

type EltwiseParameter_EltwiseOp int32

const (
	EltwiseParameter_PROD EltwiseParameter_EltwiseOp = 0
	EltwiseParameter_SUM  EltwiseParameter_EltwiseOp = 1
	EltwiseParameter_MAX  EltwiseParameter_EltwiseOp = 2
)

func (x EltwiseParameter_EltwiseOp) Enum() *EltwiseParameter_EltwiseOp {
	p := new(EltwiseParameter_EltwiseOp)
	*p = x
	return p
}
func (x EltwiseParameter_EltwiseOp) String() string { return enumName(eltwiseOpDesc, x.Number()) }
func (EltwiseParameter_EltwiseOp) Descriptor() protoreflect.EnumDescriptor {
	return eltwiseOpDesc
}
func (x EltwiseParameter_EltwiseOp) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}
func (EltwiseParameter_EltwiseOp) Type() protoreflect.EnumType {
	return enumType{eltwiseOpDesc, func(n protoreflect.EnumNumber) protoreflect.Enum {
		return EltwiseParameter_EltwiseOp(n)
	}}
}

type PoolingParameter_PoolMethod int32

const (
	PoolingParameter_MAX        PoolingParameter_PoolMethod = 0
	PoolingParameter_AVE        PoolingParameter_PoolMethod = 1
	PoolingParameter_STOCHASTIC PoolingParameter_PoolMethod = 2
)

func (x PoolingParameter_PoolMethod) Enum() *PoolingParameter_PoolMethod {
	p := new(PoolingParameter_PoolMethod)
	*p = x
	return p
}
func (x PoolingParameter_PoolMethod) String() string { return enumName(poolMethodDesc, x.Number()) }
func (PoolingParameter_PoolMethod) Descriptor() protoreflect.EnumDescriptor {
	return poolMethodDesc
}
func (x PoolingParameter_PoolMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}
func (PoolingParameter_PoolMethod) Type() protoreflect.EnumType {
	return enumType{poolMethodDesc, func(n protoreflect.EnumNumber) protoreflect.Enum {
		return PoolingParameter_PoolMethod(n)
	}}
}
