package duskgfx

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// WGPUDevice is the production GPU implementation: it wraps wgpu's
// adapter/device/queue/surface and implements GPU (and, through
// wgpuRenderPass, RenderPass) against the real driver, grounded on the teacher's gpu_operations.go
// (createGpuState/createBuffer/createRenderPipeline/createBindGroups) and
// voxelrt/rt/gpu/manager.go's buffer-lifecycle helpers.
type WGPUDevice struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration
}

// wgpuBuffer adapts *wgpu.Buffer to the GPUBuffer interface.
type wgpuBuffer struct{ buf *wgpu.Buffer }

func (b *wgpuBuffer) Size() uint64 { return b.buf.GetSize() }

// wgpuBindGroupLayout/wgpuBindGroup/wgpuPipeline wrap their concrete wgpu
// types behind the opaque interfaces used by the core pipeline.
type wgpuBindGroupLayout struct{ layout *wgpu.BindGroupLayout }
type wgpuBindGroup struct{ group *wgpu.BindGroup }
type wgpuPipeline struct{ pipeline *wgpu.RenderPipeline }

// SurfaceDescriptorSource abstracts over whatever platform surface-descriptor
// source the host provides (e.g. wgpuglfw.GetSurfaceDescriptor(window));
// it keeps this package from depending on a specific windowing library.
type SurfaceDescriptorSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// NewWGPUDevice requests an adapter/device against source, configures a
// swapchain-equivalent surface at (width, height), and returns the ready
// device. Construction-time failures are classified per the error
// taxonomy in errors.go.
func NewWGPUDevice(source SurfaceDescriptorSource, width, height uint32) (*WGPUDevice, error) {
	instance := wgpu.CreateInstance(nil)

	surface := instance.CreateSurface(source.SurfaceDescriptor())
	if surface == nil {
		return nil, &EngineError{Kind: ErrSurfaceCreation}
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, &EngineError{Kind: ErrAdapterUnavailable, Detail: err.Error()}
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "duskgfx device"})
	if err != nil {
		return nil, &EngineError{Kind: ErrDeviceCreation, Detail: err.Error()}
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		return nil, &EngineError{Kind: ErrNoSuitableSurfaceFormat}
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, config)

	return &WGPUDevice{
		Instance: instance,
		Adapter:  adapter,
		Device:   device,
		Queue:    queue,
		Surface:  surface,
		Config:   config,
	}, nil
}

// CreateBuffer implements GPU.
func (d *WGPUDevice) CreateBuffer(label string, data []byte, usage BufferUsage) GPUBuffer {
	buf, err := d.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: data,
		Usage:    toWgpuUsage(usage) | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return &wgpuBuffer{buf: buf}
}

// WriteBuffer implements GPU.
func (d *WGPUDevice) WriteBuffer(buf GPUBuffer, offset uint64, data []byte) {
	wb := buf.(*wgpuBuffer)
	if err := d.Queue.WriteBuffer(wb.buf, offset, data); err != nil {
		panic(err)
	}
}

// CreateBindGroupLayout implements GPU, producing the single-uniform
// layout every pipeline in this package binds at group 0.
func (d *WGPUDevice) CreateBindGroupLayout(visibilityVertex bool) GPUBindGroupLayout {
	visibility := wgpu.ShaderStageFragment
	if visibilityVertex {
		visibility = wgpu.ShaderStageVertex
	}

	layout, err := d.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "projection layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: visibility,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return &wgpuBindGroupLayout{layout: layout}
}

// CreateBindGroup implements GPU.
func (d *WGPUDevice) CreateBindGroup(layout GPUBindGroupLayout, buf GPUBuffer) GPUBindGroup {
	wl := layout.(*wgpuBindGroupLayout)
	wb := buf.(*wgpuBuffer)

	group, err := d.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "bind group",
		Layout: wl.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: wb.buf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	return &wgpuBindGroup{group: group}
}

// CompilePipeline implements GPU.
func (d *WGPUDevice) CompilePipeline(desc PipelineDescriptor) (GPUPipeline, error) {
	shader, err := d.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          desc.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: desc.ShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", desc.Label, err)
	}
	defer shader.Release()

	buffers := make([]wgpu.VertexBufferLayout, len(desc.VertexBuffers))
	for i, vb := range desc.VertexBuffers {
		buffers[i] = toWgpuVertexLayout(vb)
	}

	bindLayouts := make([]*wgpu.BindGroupLayout, len(desc.BindGroups))
	for i, bg := range desc.BindGroups {
		bindLayouts[i] = bg.(*wgpuBindGroupLayout).layout
	}
	pipelineLayout, err := d.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            desc.Label + " layout",
		BindGroupLayouts: bindLayouts,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline layout %s: %w", desc.Label, err)
	}
	defer pipelineLayout.Release()

	pipeline, err := d.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: d.Config.Format,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorSrcAlpha, DstFactor: wgpu.BlendFactorOneMinusSrcAlpha, Operation: wgpu.BlendOperationAdd},
						Alpha: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOneMinusSrcAlpha, Operation: wgpu.BlendOperationAdd},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render pipeline %s: %w", desc.Label, err)
	}
	return &wgpuPipeline{pipeline: pipeline}, nil
}

// SurfaceFormat implements GPU.
func (d *WGPUDevice) SurfaceFormat() TextureFormat {
	return TextureFormat(d.Config.Format)
}

// SetPresentModeImmediate disables vsync (present as soon as a frame is
// ready rather than waiting for the display's refresh), reconfiguring the
// surface with the current size.
func (d *WGPUDevice) SetPresentModeImmediate() {
	d.Config.PresentMode = wgpu.PresentModeImmediate
	d.Surface.Configure(d.Adapter, d.Device, d.Config)
}

func toWgpuUsage(usage BufferUsage) wgpu.BufferUsage {
	var out wgpu.BufferUsage
	if usage&BufferUsageVertex != 0 {
		out |= wgpu.BufferUsageVertex
	}
	if usage&BufferUsageIndex != 0 {
		out |= wgpu.BufferUsageIndex
	}
	if usage&BufferUsageUniform != 0 {
		out |= wgpu.BufferUsageUniform
	}
	return out
}

func toWgpuFormat(f VertexFormat) wgpu.VertexFormat {
	switch f {
	case VertexFormatFloat32x2:
		return wgpu.VertexFormatFloat32x2
	case VertexFormatFloat32x4:
		return wgpu.VertexFormatFloat32x4
	case VertexFormatUint32:
		return wgpu.VertexFormatUint32
	default:
		panic(fmt.Sprintf("unhandled vertex format %v", f))
	}
}

func toWgpuStepMode(m VertexStepMode) wgpu.VertexStepMode {
	if m == VertexStepModeInstance {
		return wgpu.VertexStepModeInstance
	}
	return wgpu.VertexStepModeVertex
}

func toWgpuVertexLayout(vb VertexBufferLayout) wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, len(vb.Attributes))
	for i, a := range vb.Attributes {
		attrs[i] = wgpu.VertexAttribute{
			ShaderLocation: a.ShaderLocation,
			Offset:         a.Offset,
			Format:         toWgpuFormat(a.Format),
		}
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: vb.ArrayStride,
		StepMode:    toWgpuStepMode(vb.StepMode),
		Attributes:  attrs,
	}
}

// wgpuRenderPass adapts *wgpu.RenderPassEncoder to RenderPass.
type wgpuRenderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (p *wgpuRenderPass) SetPipeline(pipeline GPUPipeline) {
	p.pass.SetPipeline(pipeline.(*wgpuPipeline).pipeline)
}

func (p *wgpuRenderPass) SetBindGroup(index uint32, group GPUBindGroup) {
	p.pass.SetBindGroup(index, group.(*wgpuBindGroup).group, nil)
}

func (p *wgpuRenderPass) SetVertexBuffer(slot uint32, buf GPUBuffer) {
	p.pass.SetVertexBuffer(slot, buf.(*wgpuBuffer).buf, 0, wgpu.WholeSize)
}

func (p *wgpuRenderPass) SetIndexBuffer(buf GPUBuffer) {
	p.pass.SetIndexBuffer(buf.(*wgpuBuffer).buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
}

func (p *wgpuRenderPass) DrawIndexedInstanced(indexCount, instanceCount uint32) {
	p.pass.DrawIndexed(indexCount, instanceCount, 0, 0, 0)
}
