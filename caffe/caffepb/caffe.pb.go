// Package caffepb holds Go bindings for the subset of caffe.proto used by
// the generator, in protoc-gen-go's proto2 struct-tag form: optional fields
// are pointers, getters return the schema defaults. The layer messages of
// the py-faster-rcnn fork (ROI pooling, smooth L1 loss) and ROIAlign are
// included. caffe.proto in this directory lists the mirrored schema.
package caffepb

import (
	proto "github.com/golang/protobuf/proto"
)

type NetParameter struct {
	Name          *string           `protobuf:"bytes,1,opt,name=name" json:"name,omitempty"`
	Input         []string          `protobuf:"bytes,3,rep,name=input" json:"input,omitempty"`
	InputDim      []int32           `protobuf:"varint,4,rep,name=input_dim,json=inputDim" json:"input_dim,omitempty"`
	ForceBackward *bool             `protobuf:"varint,5,opt,name=force_backward,json=forceBackward" json:"force_backward,omitempty"`
	InputShape    []*BlobShape      `protobuf:"bytes,8,rep,name=input_shape,json=inputShape" json:"input_shape,omitempty"`
	Layer         []*LayerParameter `protobuf:"bytes,100,rep,name=layer" json:"layer,omitempty"`
}

func (m *NetParameter) Reset()         { *m = NetParameter{} }
func (m *NetParameter) String() string { return proto.CompactTextString(m) }
func (*NetParameter) ProtoMessage()    {}

func (m *NetParameter) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *NetParameter) GetInput() []string {
	if m != nil {
		return m.Input
	}
	return nil
}

func (m *NetParameter) GetInputDim() []int32 {
	if m != nil {
		return m.InputDim
	}
	return nil
}

func (m *NetParameter) GetForceBackward() bool {
	if m != nil && m.ForceBackward != nil {
		return *m.ForceBackward
	}
	return false
}

func (m *NetParameter) GetInputShape() []*BlobShape {
	if m != nil {
		return m.InputShape
	}
	return nil
}

func (m *NetParameter) GetLayer() []*LayerParameter {
	if m != nil {
		return m.Layer
	}
	return nil
}

type BlobShape struct {
	Dim []int64 `protobuf:"varint,1,rep,packed,name=dim" json:"dim,omitempty"`
}

func (m *BlobShape) Reset()         { *m = BlobShape{} }
func (m *BlobShape) String() string { return proto.CompactTextString(m) }
func (*BlobShape) ProtoMessage()    {}

func (m *BlobShape) GetDim() []int64 {
	if m != nil {
		return m.Dim
	}
	return nil
}

type FillerParameter struct {
	Type  *string  `protobuf:"bytes,1,opt,name=type" json:"type,omitempty"`
	Value *float32 `protobuf:"fixed32,2,opt,name=value" json:"value,omitempty"`
	Min   *float32 `protobuf:"fixed32,3,opt,name=min" json:"min,omitempty"`
	Max   *float32 `protobuf:"fixed32,4,opt,name=max" json:"max,omitempty"`
	Mean  *float32 `protobuf:"fixed32,5,opt,name=mean" json:"mean,omitempty"`
	Std   *float32 `protobuf:"fixed32,6,opt,name=std" json:"std,omitempty"`
}

func (m *FillerParameter) Reset()         { *m = FillerParameter{} }
func (m *FillerParameter) String() string { return proto.CompactTextString(m) }
func (*FillerParameter) ProtoMessage()    {}

const (
	Default_FillerParameter_Type string  = "constant"
	Default_FillerParameter_Max  float32 = 1
	Default_FillerParameter_Std  float32 = 1
)

func (m *FillerParameter) GetType() string {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return Default_FillerParameter_Type
}

func (m *FillerParameter) GetValue() float32 {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return 0
}

func (m *FillerParameter) GetMin() float32 {
	if m != nil && m.Min != nil {
		return *m.Min
	}
	return 0
}

func (m *FillerParameter) GetMax() float32 {
	if m != nil && m.Max != nil {
		return *m.Max
	}
	return Default_FillerParameter_Max
}

func (m *FillerParameter) GetMean() float32 {
	if m != nil && m.Mean != nil {
		return *m.Mean
	}
	return 0
}

func (m *FillerParameter) GetStd() float32 {
	if m != nil && m.Std != nil {
		return *m.Std
	}
	return Default_FillerParameter_Std
}

type NetStateRule struct {
	Phase    *Phase   `protobuf:"varint,1,opt,name=phase,enum=caffe.Phase" json:"phase,omitempty"`
	MinLevel *int32   `protobuf:"varint,2,opt,name=min_level,json=minLevel" json:"min_level,omitempty"`
	MaxLevel *int32   `protobuf:"varint,3,opt,name=max_level,json=maxLevel" json:"max_level,omitempty"`
	Stage    []string `protobuf:"bytes,4,rep,name=stage" json:"stage,omitempty"`
	NotStage []string `protobuf:"bytes,5,rep,name=not_stage,json=notStage" json:"not_stage,omitempty"`
}

func (m *NetStateRule) Reset()         { *m = NetStateRule{} }
func (m *NetStateRule) String() string { return proto.CompactTextString(m) }
func (*NetStateRule) ProtoMessage()    {}

func (m *NetStateRule) GetPhase() Phase {
	if m != nil && m.Phase != nil {
		return *m.Phase
	}
	return 0
}

func (m *NetStateRule) GetMinLevel() int32 {
	if m != nil && m.MinLevel != nil {
		return *m.MinLevel
	}
	return 0
}

func (m *NetStateRule) GetMaxLevel() int32 {
	if m != nil && m.MaxLevel != nil {
		return *m.MaxLevel
	}
	return 0
}

func (m *NetStateRule) GetStage() []string {
	if m != nil {
		return m.Stage
	}
	return nil
}

func (m *NetStateRule) GetNotStage() []string {
	if m != nil {
		return m.NotStage
	}
	return nil
}

type ParamSpec struct {
	Name      *string  `protobuf:"bytes,1,opt,name=name" json:"name,omitempty"`
	LrMult    *float32 `protobuf:"fixed32,3,opt,name=lr_mult,json=lrMult" json:"lr_mult,omitempty"`
	DecayMult *float32 `protobuf:"fixed32,4,opt,name=decay_mult,json=decayMult" json:"decay_mult,omitempty"`
}

func (m *ParamSpec) Reset()         { *m = ParamSpec{} }
func (m *ParamSpec) String() string { return proto.CompactTextString(m) }
func (*ParamSpec) ProtoMessage()    {}

const (
	Default_ParamSpec_LrMult    float32 = 1
	Default_ParamSpec_DecayMult float32 = 1
)

func (m *ParamSpec) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *ParamSpec) GetLrMult() float32 {
	if m != nil && m.LrMult != nil {
		return *m.LrMult
	}
	return Default_ParamSpec_LrMult
}

func (m *ParamSpec) GetDecayMult() float32 {
	if m != nil && m.DecayMult != nil {
		return *m.DecayMult
	}
	return Default_ParamSpec_DecayMult
}

type LayerParameter struct {
	Name              *string                `protobuf:"bytes,1,opt,name=name" json:"name,omitempty"`
	Type              *string                `protobuf:"bytes,2,opt,name=type" json:"type,omitempty"`
	Bottom            []string               `protobuf:"bytes,3,rep,name=bottom" json:"bottom,omitempty"`
	Top               []string               `protobuf:"bytes,4,rep,name=top" json:"top,omitempty"`
	LossWeight        []float32              `protobuf:"fixed32,5,rep,name=loss_weight,json=lossWeight" json:"loss_weight,omitempty"`
	Param             []*ParamSpec           `protobuf:"bytes,6,rep,name=param" json:"param,omitempty"`
	Include           []*NetStateRule        `protobuf:"bytes,8,rep,name=include" json:"include,omitempty"`
	Exclude           []*NetStateRule        `protobuf:"bytes,9,rep,name=exclude" json:"exclude,omitempty"`
	Phase             *Phase                 `protobuf:"varint,10,opt,name=phase,enum=caffe.Phase" json:"phase,omitempty"`
	PropagateDown     []bool                 `protobuf:"varint,11,rep,name=propagate_down,json=propagateDown" json:"propagate_down,omitempty"`
	LossParam         *LossParameter         `protobuf:"bytes,101,opt,name=loss_param,json=lossParam" json:"loss_param,omitempty"`
	ConcatParam       *ConcatParameter       `protobuf:"bytes,104,opt,name=concat_param,json=concatParam" json:"concat_param,omitempty"`
	ConvolutionParam  *ConvolutionParameter  `protobuf:"bytes,106,opt,name=convolution_param,json=convolutionParam" json:"convolution_param,omitempty"`
	DropoutParam      *DropoutParameter      `protobuf:"bytes,108,opt,name=dropout_param,json=dropoutParam" json:"dropout_param,omitempty"`
	DummyDataParam    *DummyDataParameter    `protobuf:"bytes,109,opt,name=dummy_data_param,json=dummyDataParam" json:"dummy_data_param,omitempty"`
	EltwiseParam      *EltwiseParameter      `protobuf:"bytes,110,opt,name=eltwise_param,json=eltwiseParam" json:"eltwise_param,omitempty"`
	InnerProductParam *InnerProductParameter `protobuf:"bytes,117,opt,name=inner_product_param,json=innerProductParam" json:"inner_product_param,omitempty"`
	PoolingParam      *PoolingParameter      `protobuf:"bytes,121,opt,name=pooling_param,json=poolingParam" json:"pooling_param,omitempty"`
	ReluParam         *ReLUParameter         `protobuf:"bytes,123,opt,name=relu_param,json=reluParam" json:"relu_param,omitempty"`
	SoftmaxParam      *SoftmaxParameter      `protobuf:"bytes,125,opt,name=softmax_param,json=softmaxParam" json:"softmax_param,omitempty"`
	PythonParam       *PythonParameter       `protobuf:"bytes,130,opt,name=python_param,json=pythonParam" json:"python_param,omitempty"`
	ReshapeParam      *ReshapeParameter      `protobuf:"bytes,133,opt,name=reshape_param,json=reshapeParam" json:"reshape_param,omitempty"`
	BatchNormParam    *BatchNormParameter    `protobuf:"bytes,139,opt,name=batch_norm_param,json=batchNormParam" json:"batch_norm_param,omitempty"`
	ScaleParam        *ScaleParameter        `protobuf:"bytes,142,opt,name=scale_param,json=scaleParam" json:"scale_param,omitempty"`
	InputParam        *InputParameter        `protobuf:"bytes,143,opt,name=input_param,json=inputParam" json:"input_param,omitempty"`
	RoiPoolingParam   *ROIPoolingParameter   `protobuf:"bytes,8266711,opt,name=roi_pooling_param,json=roiPoolingParam" json:"roi_pooling_param,omitempty"`
	SmoothL1LossParam *SmoothL1LossParameter `protobuf:"bytes,8266712,opt,name=smooth_l1_loss_param,json=smoothL1LossParam" json:"smooth_l1_loss_param,omitempty"`
	RoiAlignParam     *ROIAlignParameter     `protobuf:"bytes,8266713,opt,name=roi_align_param,json=roiAlignParam" json:"roi_align_param,omitempty"`
}

func (m *LayerParameter) Reset()         { *m = LayerParameter{} }
func (m *LayerParameter) String() string { return proto.CompactTextString(m) }
func (*LayerParameter) ProtoMessage()    {}

func (m *LayerParameter) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *LayerParameter) GetType() string {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return ""
}

func (m *LayerParameter) GetBottom() []string {
	if m != nil {
		return m.Bottom
	}
	return nil
}

func (m *LayerParameter) GetTop() []string {
	if m != nil {
		return m.Top
	}
	return nil
}

func (m *LayerParameter) GetLossWeight() []float32 {
	if m != nil {
		return m.LossWeight
	}
	return nil
}

func (m *LayerParameter) GetParam() []*ParamSpec {
	if m != nil {
		return m.Param
	}
	return nil
}

func (m *LayerParameter) GetInclude() []*NetStateRule {
	if m != nil {
		return m.Include
	}
	return nil
}

func (m *LayerParameter) GetExclude() []*NetStateRule {
	if m != nil {
		return m.Exclude
	}
	return nil
}

func (m *LayerParameter) GetPhase() Phase {
	if m != nil && m.Phase != nil {
		return *m.Phase
	}
	return 0
}

func (m *LayerParameter) GetPropagateDown() []bool {
	if m != nil {
		return m.PropagateDown
	}
	return nil
}

func (m *LayerParameter) GetLossParam() *LossParameter {
	if m != nil {
		return m.LossParam
	}
	return nil
}

func (m *LayerParameter) GetConcatParam() *ConcatParameter {
	if m != nil {
		return m.ConcatParam
	}
	return nil
}

func (m *LayerParameter) GetConvolutionParam() *ConvolutionParameter {
	if m != nil {
		return m.ConvolutionParam
	}
	return nil
}

func (m *LayerParameter) GetDropoutParam() *DropoutParameter {
	if m != nil {
		return m.DropoutParam
	}
	return nil
}

func (m *LayerParameter) GetDummyDataParam() *DummyDataParameter {
	if m != nil {
		return m.DummyDataParam
	}
	return nil
}

func (m *LayerParameter) GetEltwiseParam() *EltwiseParameter {
	if m != nil {
		return m.EltwiseParam
	}
	return nil
}

func (m *LayerParameter) GetInnerProductParam() *InnerProductParameter {
	if m != nil {
		return m.InnerProductParam
	}
	return nil
}

func (m *LayerParameter) GetPoolingParam() *PoolingParameter {
	if m != nil {
		return m.PoolingParam
	}
	return nil
}

func (m *LayerParameter) GetReluParam() *ReLUParameter {
	if m != nil {
		return m.ReluParam
	}
	return nil
}

func (m *LayerParameter) GetSoftmaxParam() *SoftmaxParameter {
	if m != nil {
		return m.SoftmaxParam
	}
	return nil
}

func (m *LayerParameter) GetPythonParam() *PythonParameter {
	if m != nil {
		return m.PythonParam
	}
	return nil
}

func (m *LayerParameter) GetReshapeParam() *ReshapeParameter {
	if m != nil {
		return m.ReshapeParam
	}
	return nil
}

func (m *LayerParameter) GetBatchNormParam() *BatchNormParameter {
	if m != nil {
		return m.BatchNormParam
	}
	return nil
}

func (m *LayerParameter) GetScaleParam() *ScaleParameter {
	if m != nil {
		return m.ScaleParam
	}
	return nil
}

func (m *LayerParameter) GetInputParam() *InputParameter {
	if m != nil {
		return m.InputParam
	}
	return nil
}

func (m *LayerParameter) GetRoiPoolingParam() *ROIPoolingParameter {
	if m != nil {
		return m.RoiPoolingParam
	}
	return nil
}

func (m *LayerParameter) GetSmoothL1LossParam() *SmoothL1LossParameter {
	if m != nil {
		return m.SmoothL1LossParam
	}
	return nil
}

func (m *LayerParameter) GetRoiAlignParam() *ROIAlignParameter {
	if m != nil {
		return m.RoiAlignParam
	}
	return nil
}

type LossParameter struct {
	IgnoreLabel   *int32                           `protobuf:"varint,1,opt,name=ignore_label,json=ignoreLabel" json:"ignore_label,omitempty"`
	Normalize     *bool                            `protobuf:"varint,2,opt,name=normalize" json:"normalize,omitempty"`
	Normalization *LossParameter_NormalizationMode `protobuf:"varint,3,opt,name=normalization,enum=caffe.LossParameter_NormalizationMode" json:"normalization,omitempty"`
}

func (m *LossParameter) Reset()         { *m = LossParameter{} }
func (m *LossParameter) String() string { return proto.CompactTextString(m) }
func (*LossParameter) ProtoMessage()    {}

const (
	Default_LossParameter_Normalization LossParameter_NormalizationMode = LossParameter_VALID
)

func (m *LossParameter) GetIgnoreLabel() int32 {
	if m != nil && m.IgnoreLabel != nil {
		return *m.IgnoreLabel
	}
	return 0
}

func (m *LossParameter) GetNormalize() bool {
	if m != nil && m.Normalize != nil {
		return *m.Normalize
	}
	return false
}

func (m *LossParameter) GetNormalization() LossParameter_NormalizationMode {
	if m != nil && m.Normalization != nil {
		return *m.Normalization
	}
	return Default_LossParameter_Normalization
}

type ConcatParameter struct {
	ConcatDim *uint32 `protobuf:"varint,1,opt,name=concat_dim,json=concatDim" json:"concat_dim,omitempty"`
	Axis      *int32  `protobuf:"varint,2,opt,name=axis" json:"axis,omitempty"`
}

func (m *ConcatParameter) Reset()         { *m = ConcatParameter{} }
func (m *ConcatParameter) String() string { return proto.CompactTextString(m) }
func (*ConcatParameter) ProtoMessage()    {}

const (
	Default_ConcatParameter_ConcatDim uint32 = 1
	Default_ConcatParameter_Axis      int32  = 1
)

func (m *ConcatParameter) GetConcatDim() uint32 {
	if m != nil && m.ConcatDim != nil {
		return *m.ConcatDim
	}
	return Default_ConcatParameter_ConcatDim
}

func (m *ConcatParameter) GetAxis() int32 {
	if m != nil && m.Axis != nil {
		return *m.Axis
	}
	return Default_ConcatParameter_Axis
}

type ConvolutionParameter struct {
	NumOutput    *uint32          `protobuf:"varint,1,opt,name=num_output,json=numOutput" json:"num_output,omitempty"`
	BiasTerm     *bool            `protobuf:"varint,2,opt,name=bias_term,json=biasTerm" json:"bias_term,omitempty"`
	Pad          []uint32         `protobuf:"varint,3,rep,name=pad" json:"pad,omitempty"`
	KernelSize   []uint32         `protobuf:"varint,4,rep,name=kernel_size,json=kernelSize" json:"kernel_size,omitempty"`
	Group        *uint32          `protobuf:"varint,5,opt,name=group" json:"group,omitempty"`
	Stride       []uint32         `protobuf:"varint,6,rep,name=stride" json:"stride,omitempty"`
	WeightFiller *FillerParameter `protobuf:"bytes,7,opt,name=weight_filler,json=weightFiller" json:"weight_filler,omitempty"`
	BiasFiller   *FillerParameter `protobuf:"bytes,8,opt,name=bias_filler,json=biasFiller" json:"bias_filler,omitempty"`
	Dilation     []uint32         `protobuf:"varint,18,rep,name=dilation" json:"dilation,omitempty"`
}

func (m *ConvolutionParameter) Reset()         { *m = ConvolutionParameter{} }
func (m *ConvolutionParameter) String() string { return proto.CompactTextString(m) }
func (*ConvolutionParameter) ProtoMessage()    {}

const (
	Default_ConvolutionParameter_BiasTerm bool   = true
	Default_ConvolutionParameter_Group    uint32 = 1
)

func (m *ConvolutionParameter) GetNumOutput() uint32 {
	if m != nil && m.NumOutput != nil {
		return *m.NumOutput
	}
	return 0
}

func (m *ConvolutionParameter) GetBiasTerm() bool {
	if m != nil && m.BiasTerm != nil {
		return *m.BiasTerm
	}
	return Default_ConvolutionParameter_BiasTerm
}

func (m *ConvolutionParameter) GetPad() []uint32 {
	if m != nil {
		return m.Pad
	}
	return nil
}

func (m *ConvolutionParameter) GetKernelSize() []uint32 {
	if m != nil {
		return m.KernelSize
	}
	return nil
}

func (m *ConvolutionParameter) GetGroup() uint32 {
	if m != nil && m.Group != nil {
		return *m.Group
	}
	return Default_ConvolutionParameter_Group
}

func (m *ConvolutionParameter) GetStride() []uint32 {
	if m != nil {
		return m.Stride
	}
	return nil
}

func (m *ConvolutionParameter) GetWeightFiller() *FillerParameter {
	if m != nil {
		return m.WeightFiller
	}
	return nil
}

func (m *ConvolutionParameter) GetBiasFiller() *FillerParameter {
	if m != nil {
		return m.BiasFiller
	}
	return nil
}

func (m *ConvolutionParameter) GetDilation() []uint32 {
	if m != nil {
		return m.Dilation
	}
	return nil
}

type DropoutParameter struct {
	DropoutRatio *float32 `protobuf:"fixed32,1,opt,name=dropout_ratio,json=dropoutRatio" json:"dropout_ratio,omitempty"`
}

func (m *DropoutParameter) Reset()         { *m = DropoutParameter{} }
func (m *DropoutParameter) String() string { return proto.CompactTextString(m) }
func (*DropoutParameter) ProtoMessage()    {}

const (
	Default_DropoutParameter_DropoutRatio float32 = 0.5
)

func (m *DropoutParameter) GetDropoutRatio() float32 {
	if m != nil && m.DropoutRatio != nil {
		return *m.DropoutRatio
	}
	return Default_DropoutParameter_DropoutRatio
}

type DummyDataParameter struct {
	DataFiller []*FillerParameter `protobuf:"bytes,1,rep,name=data_filler,json=dataFiller" json:"data_filler,omitempty"`
	Shape      []*BlobShape       `protobuf:"bytes,6,rep,name=shape" json:"shape,omitempty"`
}

func (m *DummyDataParameter) Reset()         { *m = DummyDataParameter{} }
func (m *DummyDataParameter) String() string { return proto.CompactTextString(m) }
func (*DummyDataParameter) ProtoMessage()    {}

func (m *DummyDataParameter) GetDataFiller() []*FillerParameter {
	if m != nil {
		return m.DataFiller
	}
	return nil
}

func (m *DummyDataParameter) GetShape() []*BlobShape {
	if m != nil {
		return m.Shape
	}
	return nil
}

type EltwiseParameter struct {
	Operation *EltwiseParameter_EltwiseOp `protobuf:"varint,1,opt,name=operation,enum=caffe.EltwiseParameter_EltwiseOp" json:"operation,omitempty"`
	Coeff     []float32                   `protobuf:"fixed32,2,rep,name=coeff" json:"coeff,omitempty"`
}

func (m *EltwiseParameter) Reset()         { *m = EltwiseParameter{} }
func (m *EltwiseParameter) String() string { return proto.CompactTextString(m) }
func (*EltwiseParameter) ProtoMessage()    {}

const (
	Default_EltwiseParameter_Operation EltwiseParameter_EltwiseOp = EltwiseParameter_SUM
)

func (m *EltwiseParameter) GetOperation() EltwiseParameter_EltwiseOp {
	if m != nil && m.Operation != nil {
		return *m.Operation
	}
	return Default_EltwiseParameter_Operation
}

func (m *EltwiseParameter) GetCoeff() []float32 {
	if m != nil {
		return m.Coeff
	}
	return nil
}

type InnerProductParameter struct {
	NumOutput    *uint32          `protobuf:"varint,1,opt,name=num_output,json=numOutput" json:"num_output,omitempty"`
	BiasTerm     *bool            `protobuf:"varint,2,opt,name=bias_term,json=biasTerm" json:"bias_term,omitempty"`
	WeightFiller *FillerParameter `protobuf:"bytes,3,opt,name=weight_filler,json=weightFiller" json:"weight_filler,omitempty"`
	BiasFiller   *FillerParameter `protobuf:"bytes,4,opt,name=bias_filler,json=biasFiller" json:"bias_filler,omitempty"`
	Axis         *int32           `protobuf:"varint,5,opt,name=axis" json:"axis,omitempty"`
}

func (m *InnerProductParameter) Reset()         { *m = InnerProductParameter{} }
func (m *InnerProductParameter) String() string { return proto.CompactTextString(m) }
func (*InnerProductParameter) ProtoMessage()    {}

const (
	Default_InnerProductParameter_BiasTerm bool  = true
	Default_InnerProductParameter_Axis     int32 = 1
)

func (m *InnerProductParameter) GetNumOutput() uint32 {
	if m != nil && m.NumOutput != nil {
		return *m.NumOutput
	}
	return 0
}

func (m *InnerProductParameter) GetBiasTerm() bool {
	if m != nil && m.BiasTerm != nil {
		return *m.BiasTerm
	}
	return Default_InnerProductParameter_BiasTerm
}

func (m *InnerProductParameter) GetWeightFiller() *FillerParameter {
	if m != nil {
		return m.WeightFiller
	}
	return nil
}

func (m *InnerProductParameter) GetBiasFiller() *FillerParameter {
	if m != nil {
		return m.BiasFiller
	}
	return nil
}

func (m *InnerProductParameter) GetAxis() int32 {
	if m != nil && m.Axis != nil {
		return *m.Axis
	}
	return Default_InnerProductParameter_Axis
}

type InputParameter struct {
	Shape []*BlobShape `protobuf:"bytes,1,rep,name=shape" json:"shape,omitempty"`
}

func (m *InputParameter) Reset()         { *m = InputParameter{} }
func (m *InputParameter) String() string { return proto.CompactTextString(m) }
func (*InputParameter) ProtoMessage()    {}

func (m *InputParameter) GetShape() []*BlobShape {
	if m != nil {
		return m.Shape
	}
	return nil
}

type PoolingParameter struct {
	Pool          *PoolingParameter_PoolMethod `protobuf:"varint,1,opt,name=pool,enum=caffe.PoolingParameter_PoolMethod" json:"pool,omitempty"`
	KernelSize    *uint32                      `protobuf:"varint,2,opt,name=kernel_size,json=kernelSize" json:"kernel_size,omitempty"`
	Stride        *uint32                      `protobuf:"varint,3,opt,name=stride" json:"stride,omitempty"`
	Pad           *uint32                      `protobuf:"varint,4,opt,name=pad" json:"pad,omitempty"`
	GlobalPooling *bool                        `protobuf:"varint,12,opt,name=global_pooling,json=globalPooling" json:"global_pooling,omitempty"`
}

func (m *PoolingParameter) Reset()         { *m = PoolingParameter{} }
func (m *PoolingParameter) String() string { return proto.CompactTextString(m) }
func (*PoolingParameter) ProtoMessage()    {}

const (
	Default_PoolingParameter_Pool   PoolingParameter_PoolMethod = PoolingParameter_MAX
	Default_PoolingParameter_Stride uint32                      = 1
)

func (m *PoolingParameter) GetPool() PoolingParameter_PoolMethod {
	if m != nil && m.Pool != nil {
		return *m.Pool
	}
	return Default_PoolingParameter_Pool
}

func (m *PoolingParameter) GetKernelSize() uint32 {
	if m != nil && m.KernelSize != nil {
		return *m.KernelSize
	}
	return 0
}

func (m *PoolingParameter) GetStride() uint32 {
	if m != nil && m.Stride != nil {
		return *m.Stride
	}
	return Default_PoolingParameter_Stride
}

func (m *PoolingParameter) GetPad() uint32 {
	if m != nil && m.Pad != nil {
		return *m.Pad
	}
	return 0
}

func (m *PoolingParameter) GetGlobalPooling() bool {
	if m != nil && m.GlobalPooling != nil {
		return *m.GlobalPooling
	}
	return false
}

type PythonParameter struct {
	Module   *string `protobuf:"bytes,1,opt,name=module" json:"module,omitempty"`
	Layer    *string `protobuf:"bytes,2,opt,name=layer" json:"layer,omitempty"`
	ParamStr *string `protobuf:"bytes,3,opt,name=param_str,json=paramStr" json:"param_str,omitempty"`
}

func (m *PythonParameter) Reset()         { *m = PythonParameter{} }
func (m *PythonParameter) String() string { return proto.CompactTextString(m) }
func (*PythonParameter) ProtoMessage()    {}

const (
	Default_PythonParameter_ParamStr string = ""
)

func (m *PythonParameter) GetModule() string {
	if m != nil && m.Module != nil {
		return *m.Module
	}
	return ""
}

func (m *PythonParameter) GetLayer() string {
	if m != nil && m.Layer != nil {
		return *m.Layer
	}
	return ""
}

func (m *PythonParameter) GetParamStr() string {
	if m != nil && m.ParamStr != nil {
		return *m.ParamStr
	}
	return Default_PythonParameter_ParamStr
}

type ReLUParameter struct {
	NegativeSlope *float32 `protobuf:"fixed32,1,opt,name=negative_slope,json=negativeSlope" json:"negative_slope,omitempty"`
}

func (m *ReLUParameter) Reset()         { *m = ReLUParameter{} }
func (m *ReLUParameter) String() string { return proto.CompactTextString(m) }
func (*ReLUParameter) ProtoMessage()    {}

func (m *ReLUParameter) GetNegativeSlope() float32 {
	if m != nil && m.NegativeSlope != nil {
		return *m.NegativeSlope
	}
	return 0
}

type ReshapeParameter struct {
	Shape   *BlobShape `protobuf:"bytes,1,opt,name=shape" json:"shape,omitempty"`
	Axis    *int32     `protobuf:"varint,2,opt,name=axis" json:"axis,omitempty"`
	NumAxes *int32     `protobuf:"varint,3,opt,name=num_axes,json=numAxes" json:"num_axes,omitempty"`
}

func (m *ReshapeParameter) Reset()         { *m = ReshapeParameter{} }
func (m *ReshapeParameter) String() string { return proto.CompactTextString(m) }
func (*ReshapeParameter) ProtoMessage()    {}

const (
	Default_ReshapeParameter_NumAxes int32 = -1
)

func (m *ReshapeParameter) GetShape() *BlobShape {
	if m != nil {
		return m.Shape
	}
	return nil
}

func (m *ReshapeParameter) GetAxis() int32 {
	if m != nil && m.Axis != nil {
		return *m.Axis
	}
	return 0
}

func (m *ReshapeParameter) GetNumAxes() int32 {
	if m != nil && m.NumAxes != nil {
		return *m.NumAxes
	}
	return Default_ReshapeParameter_NumAxes
}

type BatchNormParameter struct {
	UseGlobalStats        *bool    `protobuf:"varint,1,opt,name=use_global_stats,json=useGlobalStats" json:"use_global_stats,omitempty"`
	MovingAverageFraction *float32 `protobuf:"fixed32,2,opt,name=moving_average_fraction,json=movingAverageFraction" json:"moving_average_fraction,omitempty"`
	Eps                   *float32 `protobuf:"fixed32,3,opt,name=eps" json:"eps,omitempty"`
}

func (m *BatchNormParameter) Reset()         { *m = BatchNormParameter{} }
func (m *BatchNormParameter) String() string { return proto.CompactTextString(m) }
func (*BatchNormParameter) ProtoMessage()    {}

const (
	Default_BatchNormParameter_MovingAverageFraction float32 = 0.999
	Default_BatchNormParameter_Eps                   float32 = 1e-05
)

func (m *BatchNormParameter) GetUseGlobalStats() bool {
	if m != nil && m.UseGlobalStats != nil {
		return *m.UseGlobalStats
	}
	return false
}

func (m *BatchNormParameter) GetMovingAverageFraction() float32 {
	if m != nil && m.MovingAverageFraction != nil {
		return *m.MovingAverageFraction
	}
	return Default_BatchNormParameter_MovingAverageFraction
}

func (m *BatchNormParameter) GetEps() float32 {
	if m != nil && m.Eps != nil {
		return *m.Eps
	}
	return Default_BatchNormParameter_Eps
}

type ScaleParameter struct {
	Axis       *int32           `protobuf:"varint,1,opt,name=axis" json:"axis,omitempty"`
	NumAxes    *int32           `protobuf:"varint,2,opt,name=num_axes,json=numAxes" json:"num_axes,omitempty"`
	Filler     *FillerParameter `protobuf:"bytes,3,opt,name=filler" json:"filler,omitempty"`
	BiasTerm   *bool            `protobuf:"varint,4,opt,name=bias_term,json=biasTerm" json:"bias_term,omitempty"`
	BiasFiller *FillerParameter `protobuf:"bytes,5,opt,name=bias_filler,json=biasFiller" json:"bias_filler,omitempty"`
}

func (m *ScaleParameter) Reset()         { *m = ScaleParameter{} }
func (m *ScaleParameter) String() string { return proto.CompactTextString(m) }
func (*ScaleParameter) ProtoMessage()    {}

const (
	Default_ScaleParameter_Axis    int32 = 1
	Default_ScaleParameter_NumAxes int32 = 1
)

func (m *ScaleParameter) GetAxis() int32 {
	if m != nil && m.Axis != nil {
		return *m.Axis
	}
	return Default_ScaleParameter_Axis
}

func (m *ScaleParameter) GetNumAxes() int32 {
	if m != nil && m.NumAxes != nil {
		return *m.NumAxes
	}
	return Default_ScaleParameter_NumAxes
}

func (m *ScaleParameter) GetFiller() *FillerParameter {
	if m != nil {
		return m.Filler
	}
	return nil
}

func (m *ScaleParameter) GetBiasTerm() bool {
	if m != nil && m.BiasTerm != nil {
		return *m.BiasTerm
	}
	return false
}

func (m *ScaleParameter) GetBiasFiller() *FillerParameter {
	if m != nil {
		return m.BiasFiller
	}
	return nil
}

type SoftmaxParameter struct {
	Axis *int32 `protobuf:"varint,2,opt,name=axis" json:"axis,omitempty"`
}

func (m *SoftmaxParameter) Reset()         { *m = SoftmaxParameter{} }
func (m *SoftmaxParameter) String() string { return proto.CompactTextString(m) }
func (*SoftmaxParameter) ProtoMessage()    {}

const (
	Default_SoftmaxParameter_Axis int32 = 1
)

func (m *SoftmaxParameter) GetAxis() int32 {
	if m != nil && m.Axis != nil {
		return *m.Axis
	}
	return Default_SoftmaxParameter_Axis
}

type ROIPoolingParameter struct {
	PooledH      *uint32  `protobuf:"varint,1,opt,name=pooled_h,json=pooledH" json:"pooled_h,omitempty"`
	PooledW      *uint32  `protobuf:"varint,2,opt,name=pooled_w,json=pooledW" json:"pooled_w,omitempty"`
	SpatialScale *float32 `protobuf:"fixed32,3,opt,name=spatial_scale,json=spatialScale" json:"spatial_scale,omitempty"`
}

func (m *ROIPoolingParameter) Reset()         { *m = ROIPoolingParameter{} }
func (m *ROIPoolingParameter) String() string { return proto.CompactTextString(m) }
func (*ROIPoolingParameter) ProtoMessage()    {}

const (
	Default_ROIPoolingParameter_SpatialScale float32 = 1
)

func (m *ROIPoolingParameter) GetPooledH() uint32 {
	if m != nil && m.PooledH != nil {
		return *m.PooledH
	}
	return 0
}

func (m *ROIPoolingParameter) GetPooledW() uint32 {
	if m != nil && m.PooledW != nil {
		return *m.PooledW
	}
	return 0
}

func (m *ROIPoolingParameter) GetSpatialScale() float32 {
	if m != nil && m.SpatialScale != nil {
		return *m.SpatialScale
	}
	return Default_ROIPoolingParameter_SpatialScale
}

type ROIAlignParameter struct {
	PooledH      *uint32  `protobuf:"varint,1,opt,name=pooled_h,json=pooledH" json:"pooled_h,omitempty"`
	PooledW      *uint32  `protobuf:"varint,2,opt,name=pooled_w,json=pooledW" json:"pooled_w,omitempty"`
	SpatialScale *float32 `protobuf:"fixed32,3,opt,name=spatial_scale,json=spatialScale" json:"spatial_scale,omitempty"`
}

func (m *ROIAlignParameter) Reset()         { *m = ROIAlignParameter{} }
func (m *ROIAlignParameter) String() string { return proto.CompactTextString(m) }
func (*ROIAlignParameter) ProtoMessage()    {}

const (
	Default_ROIAlignParameter_SpatialScale float32 = 1
)

func (m *ROIAlignParameter) GetPooledH() uint32 {
	if m != nil && m.PooledH != nil {
		return *m.PooledH
	}
	return 0
}

func (m *ROIAlignParameter) GetPooledW() uint32 {
	if m != nil && m.PooledW != nil {
		return *m.PooledW
	}
	return 0
}

func (m *ROIAlignParameter) GetSpatialScale() float32 {
	if m != nil && m.SpatialScale != nil {
		return *m.SpatialScale
	}
	return Default_ROIAlignParameter_SpatialScale
}

type SmoothL1LossParameter struct {
	Sigma *float32 `protobuf:"fixed32,1,opt,name=sigma" json:"sigma,omitempty"`
}

func (m *SmoothL1LossParameter) Reset()         { *m = SmoothL1LossParameter{} }
func (m *SmoothL1LossParameter) String() string { return proto.CompactTextString(m) }
func (*SmoothL1LossParameter) ProtoMessage()    {}

const (
	Default_SmoothL1LossParameter_Sigma float32 = 1
)

func (m *SmoothL1LossParameter) GetSigma() float32 {
	if m != nil && m.Sigma != nil {
		return *m.Sigma
	}
	return Default_SmoothL1LossParameter_Sigma
}
