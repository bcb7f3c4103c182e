// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/bargain/bargain.proto

package bargain

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateBargainRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MealId        string                 `protobuf:"bytes,2,opt,name=meal_id,json=mealId,proto3" json:"meal_id,omitempty"`
	ProposedPrice float64                `protobuf:"fixed64,3,opt,name=proposed_price,json=proposedPrice,proto3" json:"proposed_price,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBargainRequest) Reset() {
	*x = CreateBargainRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBargainRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBargainRequest) ProtoMessage() {}

func (x *CreateBargainRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBargainRequest.ProtoReflect.Descriptor instead.
func (*CreateBargainRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{0}
}

func (x *CreateBargainRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateBargainRequest) GetMealId() string {
	if x != nil {
		return x.MealId
	}
	return ""
}

func (x *CreateBargainRequest) GetProposedPrice() float64 {
	if x != nil {
		return x.ProposedPrice
	}
	return 0
}

func (x *CreateBargainRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type UserBargainsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserBargainsRequest) Reset() {
	*x = UserBargainsRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserBargainsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserBargainsRequest) ProtoMessage() {}

func (x *UserBargainsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserBargainsRequest.ProtoReflect.Descriptor instead.
func (*UserBargainsRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{1}
}

func (x *UserBargainsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type RestaurantBargainsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RestaurantId  string                 `protobuf:"bytes,1,opt,name=restaurant_id,json=restaurantId,proto3" json:"restaurant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestaurantBargainsRequest) Reset() {
	*x = RestaurantBargainsRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestaurantBargainsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestaurantBargainsRequest) ProtoMessage() {}

func (x *RestaurantBargainsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestaurantBargainsRequest.ProtoReflect.Descriptor instead.
func (*RestaurantBargainsRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{2}
}

func (x *RestaurantBargainsRequest) GetRestaurantId() string {
	if x != nil {
		return x.RestaurantId
	}
	return ""
}

type AllBargainsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AllBargainsRequest) Reset() {
	*x = AllBargainsRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AllBargainsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllBargainsRequest) ProtoMessage() {}

func (x *AllBargainsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AllBargainsRequest.ProtoReflect.Descriptor instead.
func (*AllBargainsRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{3}
}

type RespondRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	BargainId string                 `protobuf:"bytes,1,opt,name=bargain_id,json=bargainId,proto3" json:"bargain_id,omitempty"`
	// accepted | rejected | countered
	Status        string   `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CounterPrice  *float64 `protobuf:"fixed64,3,opt,name=counter_price,json=counterPrice,proto3,oneof" json:"counter_price,omitempty"`
	Message       string   `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RespondRequest) Reset() {
	*x = RespondRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RespondRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RespondRequest) ProtoMessage() {}

func (x *RespondRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RespondRequest.ProtoReflect.Descriptor instead.
func (*RespondRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{4}
}

func (x *RespondRequest) GetBargainId() string {
	if x != nil {
		return x.BargainId
	}
	return ""
}

func (x *RespondRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RespondRequest) GetCounterPrice() float64 {
	if x != nil && x.CounterPrice != nil {
		return *x.CounterPrice
	}
	return 0
}

func (x *RespondRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CounterDecisionRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	BargainId string                 `protobuf:"bytes,1,opt,name=bargain_id,json=bargainId,proto3" json:"bargain_id,omitempty"`
	// accepted | rejected
	Response      string `protobuf:"bytes,2,opt,name=response,proto3" json:"response,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CounterDecisionRequest) Reset() {
	*x = CounterDecisionRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CounterDecisionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CounterDecisionRequest) ProtoMessage() {}

func (x *CounterDecisionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CounterDecisionRequest.ProtoReflect.Descriptor instead.
func (*CounterDecisionRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{5}
}

func (x *CounterDecisionRequest) GetBargainId() string {
	if x != nil {
		return x.BargainId
	}
	return ""
}

func (x *CounterDecisionRequest) GetResponse() string {
	if x != nil {
		return x.Response
	}
	return ""
}

type BargainReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainReply) Reset() {
	*x = BargainReply{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainReply) ProtoMessage() {}

func (x *BargainReply) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainReply.ProtoReflect.Descriptor instead.
func (*BargainReply) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{6}
}

func (x *BargainReply) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *BargainReply) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargains      []*BargainView         `protobuf:"bytes,1,rep,name=bargains,proto3" json:"bargains,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainList) Reset() {
	*x = BargainList{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainList) ProtoMessage() {}

func (x *BargainList) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainList.ProtoReflect.Descriptor instead.
func (*BargainList) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{7}
}

func (x *BargainList) GetBargains() []*BargainView {
	if x != nil {
		return x.Bargains
	}
	return nil
}

type UserOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserOrdersRequest) Reset() {
	*x = UserOrdersRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserOrdersRequest) ProtoMessage() {}

func (x *UserOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserOrdersRequest.ProtoReflect.Descriptor instead.
func (*UserOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{8}
}

func (x *UserOrdersRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AllOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AllOrdersRequest) Reset() {
	*x = AllOrdersRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AllOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllOrdersRequest) ProtoMessage() {}

func (x *AllOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AllOrdersRequest.ProtoReflect.Descriptor instead.
func (*AllOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{9}
}

type OrderList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*OrderView           `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderList) Reset() {
	*x = OrderList{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderList) ProtoMessage() {}

func (x *OrderList) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderList.ProtoReflect.Descriptor instead.
func (*OrderList) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{10}
}

func (x *OrderList) GetOrders() []*OrderView {
	if x != nil {
		return x.Orders
	}
	return nil
}

type SearchMealsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchMealsRequest) Reset() {
	*x = SearchMealsRequest{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchMealsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchMealsRequest) ProtoMessage() {}

func (x *SearchMealsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchMealsRequest.ProtoReflect.Descriptor instead.
func (*SearchMealsRequest) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{11}
}

func (x *SearchMealsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchMealsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type MealList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Meals         []*MealView            `protobuf:"bytes,1,rep,name=meals,proto3" json:"meals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MealList) Reset() {
	*x = MealList{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MealList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MealList) ProtoMessage() {}

func (x *MealList) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MealList.ProtoReflect.Descriptor instead.
func (*MealList) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{12}
}

func (x *MealList) GetMeals() []*MealView {
	if x != nil {
		return x.Meals
	}
	return nil
}

type BargainView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MealId        string                 `protobuf:"bytes,3,opt,name=meal_id,json=mealId,proto3" json:"meal_id,omitempty"`
	RestaurantId  string                 `protobuf:"bytes,4,opt,name=restaurant_id,json=restaurantId,proto3" json:"restaurant_id,omitempty"`
	OriginalPrice float64                `protobuf:"fixed64,5,opt,name=original_price,json=originalPrice,proto3" json:"original_price,omitempty"`
	ProposedPrice float64                `protobuf:"fixed64,6,opt,name=proposed_price,json=proposedPrice,proto3" json:"proposed_price,omitempty"`
	CounterPrice  *float64               `protobuf:"fixed64,7,opt,name=counter_price,json=counterPrice,proto3,oneof" json:"counter_price,omitempty"`
	FinalPrice    *float64               `protobuf:"fixed64,8,opt,name=final_price,json=finalPrice,proto3,oneof" json:"final_price,omitempty"`
	Status        string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	Message       string                 `protobuf:"bytes,10,opt,name=message,proto3" json:"message,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // unix nanoseconds
	ExpiresAt     int64                  `protobuf:"varint,12,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainView) Reset() {
	*x = BargainView{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainView) ProtoMessage() {}

func (x *BargainView) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainView.ProtoReflect.Descriptor instead.
func (*BargainView) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{13}
}

func (x *BargainView) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BargainView) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BargainView) GetMealId() string {
	if x != nil {
		return x.MealId
	}
	return ""
}

func (x *BargainView) GetRestaurantId() string {
	if x != nil {
		return x.RestaurantId
	}
	return ""
}

func (x *BargainView) GetOriginalPrice() float64 {
	if x != nil {
		return x.OriginalPrice
	}
	return 0
}

func (x *BargainView) GetProposedPrice() float64 {
	if x != nil {
		return x.ProposedPrice
	}
	return 0
}

func (x *BargainView) GetCounterPrice() float64 {
	if x != nil && x.CounterPrice != nil {
		return *x.CounterPrice
	}
	return 0
}

func (x *BargainView) GetFinalPrice() float64 {
	if x != nil && x.FinalPrice != nil {
		return *x.FinalPrice
	}
	return 0
}

func (x *BargainView) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BargainView) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *BargainView) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *BargainView) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type OrderItemView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MealId        string                 `protobuf:"bytes,1,opt,name=meal_id,json=mealId,proto3" json:"meal_id,omitempty"`
	Quantity      int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price         float64                `protobuf:"fixed64,3,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderItemView) Reset() {
	*x = OrderItemView{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItemView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItemView) ProtoMessage() {}

func (x *OrderItemView) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItemView.ProtoReflect.Descriptor instead.
func (*OrderItemView) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{14}
}

func (x *OrderItemView) GetMealId() string {
	if x != nil {
		return x.MealId
	}
	return ""
}

func (x *OrderItemView) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItemView) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type OrderView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Items         []*OrderItemView       `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	TotalAmount   float64                `protobuf:"fixed64,4,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	DeliveryFee   float64                `protobuf:"fixed64,5,opt,name=delivery_fee,json=deliveryFee,proto3" json:"delivery_fee,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	PaymentMethod string                 `protobuf:"bytes,7,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	BargainId     string                 `protobuf:"bytes,8,opt,name=bargain_id,json=bargainId,proto3" json:"bargain_id,omitempty"`
	PlacedAt      int64                  `protobuf:"varint,9,opt,name=placed_at,json=placedAt,proto3" json:"placed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderView) Reset() {
	*x = OrderView{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderView) ProtoMessage() {}

func (x *OrderView) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderView.ProtoReflect.Descriptor instead.
func (*OrderView) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{15}
}

func (x *OrderView) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *OrderView) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *OrderView) GetItems() []*OrderItemView {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *OrderView) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *OrderView) GetDeliveryFee() float64 {
	if x != nil {
		return x.DeliveryFee
	}
	return 0
}

func (x *OrderView) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *OrderView) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *OrderView) GetBargainId() string {
	if x != nil {
		return x.BargainId
	}
	return ""
}

func (x *OrderView) GetPlacedAt() int64 {
	if x != nil {
		return x.PlacedAt
	}
	return 0
}

type MealView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Price         float64                `protobuf:"fixed64,4,opt,name=price,proto3" json:"price,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	RestaurantId  string                 `protobuf:"bytes,6,opt,name=restaurant_id,json=restaurantId,proto3" json:"restaurant_id,omitempty"`
	ImageUrl      string                 `protobuf:"bytes,7,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	Tags          []string               `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MealView) Reset() {
	*x = MealView{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MealView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MealView) ProtoMessage() {}

func (x *MealView) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MealView.ProtoReflect.Descriptor instead.
func (*MealView) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{16}
}

func (x *MealView) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MealView) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MealView) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *MealView) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *MealView) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *MealView) GetRestaurantId() string {
	if x != nil {
		return x.RestaurantId
	}
	return ""
}

func (x *MealView) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *MealView) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type ClientEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ClientEvent_JoinUserRoom
	//	*ClientEvent_JoinRestaurantRoom
	//	*ClientEvent_JoinAdminRoom
	//	*ClientEvent_NewBargain
	//	*ClientEvent_BargainResponse
	//	*ClientEvent_AcceptCounter
	Event         isClientEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientEvent) Reset() {
	*x = ClientEvent{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientEvent) ProtoMessage() {}

func (x *ClientEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientEvent.ProtoReflect.Descriptor instead.
func (*ClientEvent) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{17}
}

func (x *ClientEvent) GetEvent() isClientEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ClientEvent) GetJoinUserRoom() *JoinUserRoom {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_JoinUserRoom); ok {
			return x.JoinUserRoom
		}
	}
	return nil
}

func (x *ClientEvent) GetJoinRestaurantRoom() *JoinRestaurantRoom {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_JoinRestaurantRoom); ok {
			return x.JoinRestaurantRoom
		}
	}
	return nil
}

func (x *ClientEvent) GetJoinAdminRoom() *JoinAdminRoom {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_JoinAdminRoom); ok {
			return x.JoinAdminRoom
		}
	}
	return nil
}

func (x *ClientEvent) GetNewBargain() *NewBargain {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_NewBargain); ok {
			return x.NewBargain
		}
	}
	return nil
}

func (x *ClientEvent) GetBargainResponse() *BargainResponse {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_BargainResponse); ok {
			return x.BargainResponse
		}
	}
	return nil
}

func (x *ClientEvent) GetAcceptCounter() *AcceptCounter {
	if x != nil {
		if x, ok := x.Event.(*ClientEvent_AcceptCounter); ok {
			return x.AcceptCounter
		}
	}
	return nil
}

type isClientEvent_Event interface {
	isClientEvent_Event()
}

type ClientEvent_JoinUserRoom struct {
	JoinUserRoom *JoinUserRoom `protobuf:"bytes,1,opt,name=join_user_room,json=joinUserRoom,proto3,oneof"`
}

type ClientEvent_JoinRestaurantRoom struct {
	JoinRestaurantRoom *JoinRestaurantRoom `protobuf:"bytes,2,opt,name=join_restaurant_room,json=joinRestaurantRoom,proto3,oneof"`
}

type ClientEvent_JoinAdminRoom struct {
	JoinAdminRoom *JoinAdminRoom `protobuf:"bytes,3,opt,name=join_admin_room,json=joinAdminRoom,proto3,oneof"`
}

type ClientEvent_NewBargain struct {
	NewBargain *NewBargain `protobuf:"bytes,4,opt,name=new_bargain,json=newBargain,proto3,oneof"`
}

type ClientEvent_BargainResponse struct {
	BargainResponse *BargainResponse `protobuf:"bytes,5,opt,name=bargain_response,json=bargainResponse,proto3,oneof"`
}

type ClientEvent_AcceptCounter struct {
	AcceptCounter *AcceptCounter `protobuf:"bytes,6,opt,name=accept_counter,json=acceptCounter,proto3,oneof"`
}

func (*ClientEvent_JoinUserRoom) isClientEvent_Event() {}

func (*ClientEvent_JoinRestaurantRoom) isClientEvent_Event() {}

func (*ClientEvent_JoinAdminRoom) isClientEvent_Event() {}

func (*ClientEvent_NewBargain) isClientEvent_Event() {}

func (*ClientEvent_BargainResponse) isClientEvent_Event() {}

func (*ClientEvent_AcceptCounter) isClientEvent_Event() {}

type JoinUserRoom struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinUserRoom) Reset() {
	*x = JoinUserRoom{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinUserRoom) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinUserRoom) ProtoMessage() {}

func (x *JoinUserRoom) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinUserRoom.ProtoReflect.Descriptor instead.
func (*JoinUserRoom) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{18}
}

func (x *JoinUserRoom) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type JoinRestaurantRoom struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RestaurantId  string                 `protobuf:"bytes,1,opt,name=restaurant_id,json=restaurantId,proto3" json:"restaurant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinRestaurantRoom) Reset() {
	*x = JoinRestaurantRoom{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinRestaurantRoom) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinRestaurantRoom) ProtoMessage() {}

func (x *JoinRestaurantRoom) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinRestaurantRoom.ProtoReflect.Descriptor instead.
func (*JoinRestaurantRoom) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{19}
}

func (x *JoinRestaurantRoom) GetRestaurantId() string {
	if x != nil {
		return x.RestaurantId
	}
	return ""
}

type JoinAdminRoom struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinAdminRoom) Reset() {
	*x = JoinAdminRoom{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinAdminRoom) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinAdminRoom) ProtoMessage() {}

func (x *JoinAdminRoom) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinAdminRoom.ProtoReflect.Descriptor instead.
func (*JoinAdminRoom) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{20}
}

type NewBargain struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MealId        string                 `protobuf:"bytes,2,opt,name=meal_id,json=mealId,proto3" json:"meal_id,omitempty"`
	ProposedPrice float64                `protobuf:"fixed64,3,opt,name=proposed_price,json=proposedPrice,proto3" json:"proposed_price,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewBargain) Reset() {
	*x = NewBargain{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewBargain) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewBargain) ProtoMessage() {}

func (x *NewBargain) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewBargain.ProtoReflect.Descriptor instead.
func (*NewBargain) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{21}
}

func (x *NewBargain) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *NewBargain) GetMealId() string {
	if x != nil {
		return x.MealId
	}
	return ""
}

func (x *NewBargain) GetProposedPrice() float64 {
	if x != nil {
		return x.ProposedPrice
	}
	return 0
}

func (x *NewBargain) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	BargainId string                 `protobuf:"bytes,1,opt,name=bargain_id,json=bargainId,proto3" json:"bargain_id,omitempty"`
	// accepted | rejected | countered
	Status        string   `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CounterPrice  *float64 `protobuf:"fixed64,3,opt,name=counter_price,json=counterPrice,proto3,oneof" json:"counter_price,omitempty"`
	Message       string   `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainResponse) Reset() {
	*x = BargainResponse{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainResponse) ProtoMessage() {}

func (x *BargainResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainResponse.ProtoReflect.Descriptor instead.
func (*BargainResponse) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{22}
}

func (x *BargainResponse) GetBargainId() string {
	if x != nil {
		return x.BargainId
	}
	return ""
}

func (x *BargainResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BargainResponse) GetCounterPrice() float64 {
	if x != nil && x.CounterPrice != nil {
		return *x.CounterPrice
	}
	return 0
}

func (x *BargainResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type AcceptCounter struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BargainId     string                 `protobuf:"bytes,1,opt,name=bargain_id,json=bargainId,proto3" json:"bargain_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptCounter) Reset() {
	*x = AcceptCounter{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptCounter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptCounter) ProtoMessage() {}

func (x *AcceptCounter) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptCounter.ProtoReflect.Descriptor instead.
func (*AcceptCounter) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{23}
}

func (x *AcceptCounter) GetBargainId() string {
	if x != nil {
		return x.BargainId
	}
	return ""
}

type ServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ServerEvent_BargainCreated
	//	*ServerEvent_BargainReceived
	//	*ServerEvent_BargainUpdate
	//	*ServerEvent_ResponseSent
	//	*ServerEvent_BargainAccepted
	//	*ServerEvent_CounterAccepted
	//	*ServerEvent_BargainError
	Event         isServerEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{24}
}

func (x *ServerEvent) GetEvent() isServerEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ServerEvent) GetBargainCreated() *BargainCreated {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_BargainCreated); ok {
			return x.BargainCreated
		}
	}
	return nil
}

func (x *ServerEvent) GetBargainReceived() *BargainReceived {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_BargainReceived); ok {
			return x.BargainReceived
		}
	}
	return nil
}

func (x *ServerEvent) GetBargainUpdate() *BargainUpdate {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_BargainUpdate); ok {
			return x.BargainUpdate
		}
	}
	return nil
}

func (x *ServerEvent) GetResponseSent() *ResponseSent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_ResponseSent); ok {
			return x.ResponseSent
		}
	}
	return nil
}

func (x *ServerEvent) GetBargainAccepted() *BargainAccepted {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_BargainAccepted); ok {
			return x.BargainAccepted
		}
	}
	return nil
}

func (x *ServerEvent) GetCounterAccepted() *CounterAccepted {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_CounterAccepted); ok {
			return x.CounterAccepted
		}
	}
	return nil
}

func (x *ServerEvent) GetBargainError() *BargainError {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_BargainError); ok {
			return x.BargainError
		}
	}
	return nil
}

type isServerEvent_Event interface {
	isServerEvent_Event()
}

type ServerEvent_BargainCreated struct {
	BargainCreated *BargainCreated `protobuf:"bytes,1,opt,name=bargain_created,json=bargainCreated,proto3,oneof"`
}

type ServerEvent_BargainReceived struct {
	BargainReceived *BargainReceived `protobuf:"bytes,2,opt,name=bargain_received,json=bargainReceived,proto3,oneof"`
}

type ServerEvent_BargainUpdate struct {
	BargainUpdate *BargainUpdate `protobuf:"bytes,3,opt,name=bargain_update,json=bargainUpdate,proto3,oneof"`
}

type ServerEvent_ResponseSent struct {
	ResponseSent *ResponseSent `protobuf:"bytes,4,opt,name=response_sent,json=responseSent,proto3,oneof"`
}

type ServerEvent_BargainAccepted struct {
	BargainAccepted *BargainAccepted `protobuf:"bytes,5,opt,name=bargain_accepted,json=bargainAccepted,proto3,oneof"`
}

type ServerEvent_CounterAccepted struct {
	CounterAccepted *CounterAccepted `protobuf:"bytes,6,opt,name=counter_accepted,json=counterAccepted,proto3,oneof"`
}

type ServerEvent_BargainError struct {
	BargainError *BargainError `protobuf:"bytes,7,opt,name=bargain_error,json=bargainError,proto3,oneof"`
}

func (*ServerEvent_BargainCreated) isServerEvent_Event() {}

func (*ServerEvent_BargainReceived) isServerEvent_Event() {}

func (*ServerEvent_BargainUpdate) isServerEvent_Event() {}

func (*ServerEvent_ResponseSent) isServerEvent_Event() {}

func (*ServerEvent_BargainAccepted) isServerEvent_Event() {}

func (*ServerEvent_CounterAccepted) isServerEvent_Event() {}

func (*ServerEvent_BargainError) isServerEvent_Event() {}

type BargainCreated struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainCreated) Reset() {
	*x = BargainCreated{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainCreated) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainCreated) ProtoMessage() {}

func (x *BargainCreated) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainCreated.ProtoReflect.Descriptor instead.
func (*BargainCreated) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{25}
}

func (x *BargainCreated) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *BargainCreated) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainReceived struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainReceived) Reset() {
	*x = BargainReceived{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainReceived) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainReceived) ProtoMessage() {}

func (x *BargainReceived) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainReceived.ProtoReflect.Descriptor instead.
func (*BargainReceived) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{26}
}

func (x *BargainReceived) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *BargainReceived) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainUpdate) Reset() {
	*x = BargainUpdate{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainUpdate) ProtoMessage() {}

func (x *BargainUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainUpdate.ProtoReflect.Descriptor instead.
func (*BargainUpdate) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{27}
}

func (x *BargainUpdate) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *BargainUpdate) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ResponseSent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResponseSent) Reset() {
	*x = ResponseSent{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResponseSent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResponseSent) ProtoMessage() {}

func (x *ResponseSent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResponseSent.ProtoReflect.Descriptor instead.
func (*ResponseSent) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{28}
}

func (x *ResponseSent) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *ResponseSent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainAccepted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainAccepted) Reset() {
	*x = BargainAccepted{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainAccepted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainAccepted) ProtoMessage() {}

func (x *BargainAccepted) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainAccepted.ProtoReflect.Descriptor instead.
func (*BargainAccepted) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{29}
}

func (x *BargainAccepted) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *BargainAccepted) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CounterAccepted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bargain       *BargainView           `protobuf:"bytes,1,opt,name=bargain,proto3" json:"bargain,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CounterAccepted) Reset() {
	*x = CounterAccepted{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CounterAccepted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CounterAccepted) ProtoMessage() {}

func (x *CounterAccepted) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CounterAccepted.ProtoReflect.Descriptor instead.
func (*CounterAccepted) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{30}
}

func (x *CounterAccepted) GetBargain() *BargainView {
	if x != nil {
		return x.Bargain
	}
	return nil
}

func (x *CounterAccepted) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BargainError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BargainError) Reset() {
	*x = BargainError{}
	mi := &file_proto_bargain_bargain_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BargainError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BargainError) ProtoMessage() {}

func (x *BargainError) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bargain_bargain_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BargainError.ProtoReflect.Descriptor instead.
func (*BargainError) Descriptor() ([]byte, []int) {
	return file_proto_bargain_bargain_proto_rawDescGZIP(), []int{31}
}

func (x *BargainError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var File_proto_bargain_bargain_proto protoreflect.FileDescriptor

const file_proto_bargain_bargain_proto_rawDesc = "" +
	"\n" +
	"\x1bproto/bargain/bargain.proto\x12\x11mealmatch.bargain\"\x89\x01\n" +
	"\x14CreateBargainRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\ameal_id\x18\x02 \x01(\tR\x06mealId\x12%\n" +
	"\x0eproposed_price\x18\x03 \x01(\x01R\rproposedPrice\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\".\n" +
	"\x13UserBargainsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"@\n" +
	"\x19RestaurantBargainsRequest\x12#\n" +
	"\rrestaurant_id\x18\x01 \x01(\tR\frestaurantId\"\x14\n" +
	"\x12AllBargainsRequest\"\x9d\x01\n" +
	"\x0eRespondRequest\x12\x1d\n" +
	"\n" +
	"bargain_id\x18\x01 \x01(\tR\tbargainId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12(\n" +
	"\rcounter_price\x18\x03 \x01(\x01H\x00R\fcounterPrice\x88\x01\x01\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessageB\x10\n" +
	"\x0e_counter_price\"S\n" +
	"\x16CounterDecisionRequest\x12\x1d\n" +
	"\n" +
	"bargain_id\x18\x01 \x01(\tR\tbargainId\x12\x1a\n" +
	"\bresponse\x18\x02 \x01(\tR\bresponse\"b\n" +
	"\fBargainReply\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"I\n" +
	"\vBargainList\x12:\n" +
	"\bbargains\x18\x01 \x03(\v2\x1e.mealmatch.bargain.BargainViewR\bbargains\",\n" +
	"\x11UserOrdersRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\x12\n" +
	"\x10AllOrdersRequest\"A\n" +
	"\tOrderList\x124\n" +
	"\x06orders\x18\x01 \x03(\v2\x1c.mealmatch.bargain.OrderViewR\x06orders\"@\n" +
	"\x12SearchMealsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"=\n" +
	"\bMealList\x121\n" +
	"\x05meals\x18\x01 \x03(\v2\x1b.mealmatch.bargain.MealViewR\x05meals\"\xa4\x03\n" +
	"\vBargainView\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x17\n" +
	"\ameal_id\x18\x03 \x01(\tR\x06mealId\x12#\n" +
	"\rrestaurant_id\x18\x04 \x01(\tR\frestaurantId\x12%\n" +
	"\x0eoriginal_price\x18\x05 \x01(\x01R\roriginalPrice\x12%\n" +
	"\x0eproposed_price\x18\x06 \x01(\x01R\rproposedPrice\x12(\n" +
	"\rcounter_price\x18\a \x01(\x01H\x00R\fcounterPrice\x88\x01\x01\x12$\n" +
	"\vfinal_price\x18\b \x01(\x01H\x01R\n" +
	"finalPrice\x88\x01\x01\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\n" +
	" \x01(\tR\amessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\x03R\tcreatedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\f \x01(\x03R\texpiresAtB\x10\n" +
	"\x0e_counter_priceB\x0e\n" +
	"\f_final_price\"Z\n" +
	"\rOrderItemView\x12\x17\n" +
	"\ameal_id\x18\x01 \x01(\tR\x06mealId\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x01R\x05price\"\xad\x02\n" +
	"\tOrderView\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x126\n" +
	"\x05items\x18\x03 \x03(\v2 .mealmatch.bargain.OrderItemViewR\x05items\x12!\n" +
	"\ftotal_amount\x18\x04 \x01(\x01R\vtotalAmount\x12!\n" +
	"\fdelivery_fee\x18\x05 \x01(\x01R\vdeliveryFee\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12%\n" +
	"\x0epayment_method\x18\a \x01(\tR\rpaymentMethod\x12\x1d\n" +
	"\n" +
	"bargain_id\x18\b \x01(\tR\tbargainId\x12\x1b\n" +
	"\tplaced_at\x18\t \x01(\x03R\bplacedAt\"\xd8\x01\n" +
	"\bMealView\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x01R\x05price\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12#\n" +
	"\rrestaurant_id\x18\x06 \x01(\tR\frestaurantId\x12\x1b\n" +
	"\timage_url\x18\a \x01(\tR\bimageUrl\x12\x12\n" +
	"\x04tags\x18\b \x03(\tR\x04tags\"\xe4\x03\n" +
	"\vClientEvent\x12G\n" +
	"\x0ejoin_user_room\x18\x01 \x01(\v2\x1f.mealmatch.bargain.JoinUserRoomH\x00R\fjoinUserRoom\x12Y\n" +
	"\x14join_restaurant_room\x18\x02 \x01(\v2%.mealmatch.bargain.JoinRestaurantRoomH\x00R\x12joinRestaurantRoom\x12J\n" +
	"\x0fjoin_admin_room\x18\x03 \x01(\v2 .mealmatch.bargain.JoinAdminRoomH\x00R\rjoinAdminRoom\x12@\n" +
	"\vnew_bargain\x18\x04 \x01(\v2\x1d.mealmatch.bargain.NewBargainH\x00R\n" +
	"newBargain\x12O\n" +
	"\x10bargain_response\x18\x05 \x01(\v2\".mealmatch.bargain.BargainResponseH\x00R\x0fbargainResponse\x12I\n" +
	"\x0eaccept_counter\x18\x06 \x01(\v2 .mealmatch.bargain.AcceptCounterH\x00R\racceptCounterB\a\n" +
	"\x05event\"'\n" +
	"\fJoinUserRoom\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"9\n" +
	"\x12JoinRestaurantRoom\x12#\n" +
	"\rrestaurant_id\x18\x01 \x01(\tR\frestaurantId\"\x0f\n" +
	"\rJoinAdminRoom\"\x7f\n" +
	"\n" +
	"NewBargain\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\ameal_id\x18\x02 \x01(\tR\x06mealId\x12%\n" +
	"\x0eproposed_price\x18\x03 \x01(\x01R\rproposedPrice\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\"\x9e\x01\n" +
	"\x0fBargainResponse\x12\x1d\n" +
	"\n" +
	"bargain_id\x18\x01 \x01(\tR\tbargainId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12(\n" +
	"\rcounter_price\x18\x03 \x01(\x01H\x00R\fcounterPrice\x88\x01\x01\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessageB\x10\n" +
	"\x0e_counter_price\".\n" +
	"\rAcceptCounter\x12\x1d\n" +
	"\n" +
	"bargain_id\x18\x01 \x01(\tR\tbargainId\"\xb2\x04\n" +
	"\vServerEvent\x12L\n" +
	"\x0fbargain_created\x18\x01 \x01(\v2!.mealmatch.bargain.BargainCreatedH\x00R\x0ebargainCreated\x12O\n" +
	"\x10bargain_received\x18\x02 \x01(\v2\".mealmatch.bargain.BargainReceivedH\x00R\x0fbargainReceived\x12I\n" +
	"\x0ebargain_update\x18\x03 \x01(\v2 .mealmatch.bargain.BargainUpdateH\x00R\rbargainUpdate\x12F\n" +
	"\rresponse_sent\x18\x04 \x01(\v2\x1f.mealmatch.bargain.ResponseSentH\x00R\fresponseSent\x12O\n" +
	"\x10bargain_accepted\x18\x05 \x01(\v2\".mealmatch.bargain.BargainAcceptedH\x00R\x0fbargainAccepted\x12O\n" +
	"\x10counter_accepted\x18\x06 \x01(\v2\".mealmatch.bargain.CounterAcceptedH\x00R\x0fcounterAccepted\x12F\n" +
	"\rbargain_error\x18\a \x01(\v2\x1f.mealmatch.bargain.BargainErrorH\x00R\fbargainErrorB\a\n" +
	"\x05event\"d\n" +
	"\x0eBargainCreated\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"e\n" +
	"\x0fBargainReceived\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"c\n" +
	"\rBargainUpdate\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"b\n" +
	"\fResponseSent\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"e\n" +
	"\x0fBargainAccepted\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"e\n" +
	"\x0fCounterAccepted\x128\n" +
	"\abargain\x18\x01 \x01(\v2\x1e.mealmatch.bargain.BargainViewR\abargain\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"(\n" +
	"\fBargainError\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage2\x8f\x05\n" +
	"\x0eBargainService\x12Y\n" +
	"\rCreateBargain\x12'.mealmatch.bargain.CreateBargainRequest\x1a\x1f.mealmatch.bargain.BargainReply\x12Y\n" +
	"\x0fGetUserBargains\x12&.mealmatch.bargain.UserBargainsRequest\x1a\x1e.mealmatch.bargain.BargainList\x12e\n" +
	"\x15GetRestaurantBargains\x12,.mealmatch.bargain.RestaurantBargainsRequest\x1a\x1e.mealmatch.bargain.BargainList\x12W\n" +
	"\x0eGetAllBargains\x12%.mealmatch.bargain.AllBargainsRequest\x1a\x1e.mealmatch.bargain.BargainList\x12V\n" +
	"\x10RespondToBargain\x12!.mealmatch.bargain.RespondRequest\x1a\x1f.mealmatch.bargain.BargainReply\x12^\n" +
	"\x10RespondToCounter\x12).mealmatch.bargain.CounterDecisionRequest\x1a\x1f.mealmatch.bargain.BargainReply\x12O\n" +
	"\tNegotiate\x12\x1e.mealmatch.bargain.ClientEvent\x1a\x1e.mealmatch.bargain.ServerEvent(\x010\x012\xb6\x01\n" +
	"\fOrderService\x12S\n" +
	"\rGetUserOrders\x12$.mealmatch.bargain.UserOrdersRequest\x1a\x1c.mealmatch.bargain.OrderList\x12Q\n" +
	"\fGetAllOrders\x12#.mealmatch.bargain.AllOrdersRequest\x1a\x1c.mealmatch.bargain.OrderList2`\n" +
	"\vMealService\x12Q\n" +
	"\vSearchMeals\x12%.mealmatch.bargain.SearchMealsRequest\x1a\x1b.mealmatch.bargain.MealListB\x19Z\x17mealmatch/proto/bargainb\x06proto3"

var (
	file_proto_bargain_bargain_proto_rawDescOnce sync.Once
	file_proto_bargain_bargain_proto_rawDescData []byte
)

func file_proto_bargain_bargain_proto_rawDescGZIP() []byte {
	file_proto_bargain_bargain_proto_rawDescOnce.Do(func() {
		file_proto_bargain_bargain_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_bargain_bargain_proto_rawDesc), len(file_proto_bargain_bargain_proto_rawDesc)))
	})
	return file_proto_bargain_bargain_proto_rawDescData
}

var file_proto_bargain_bargain_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_proto_bargain_bargain_proto_goTypes = []any{
	(*CreateBargainRequest)(nil),      // 0: mealmatch.bargain.CreateBargainRequest
	(*UserBargainsRequest)(nil),       // 1: mealmatch.bargain.UserBargainsRequest
	(*RestaurantBargainsRequest)(nil), // 2: mealmatch.bargain.RestaurantBargainsRequest
	(*AllBargainsRequest)(nil),        // 3: mealmatch.bargain.AllBargainsRequest
	(*RespondRequest)(nil),            // 4: mealmatch.bargain.RespondRequest
	(*CounterDecisionRequest)(nil),    // 5: mealmatch.bargain.CounterDecisionRequest
	(*BargainReply)(nil),              // 6: mealmatch.bargain.BargainReply
	(*BargainList)(nil),               // 7: mealmatch.bargain.BargainList
	(*UserOrdersRequest)(nil),         // 8: mealmatch.bargain.UserOrdersRequest
	(*AllOrdersRequest)(nil),          // 9: mealmatch.bargain.AllOrdersRequest
	(*OrderList)(nil),                 // 10: mealmatch.bargain.OrderList
	(*SearchMealsRequest)(nil),        // 11: mealmatch.bargain.SearchMealsRequest
	(*MealList)(nil),                  // 12: mealmatch.bargain.MealList
	(*BargainView)(nil),               // 13: mealmatch.bargain.BargainView
	(*OrderItemView)(nil),             // 14: mealmatch.bargain.OrderItemView
	(*OrderView)(nil),                 // 15: mealmatch.bargain.OrderView
	(*MealView)(nil),                  // 16: mealmatch.bargain.MealView
	(*ClientEvent)(nil),               // 17: mealmatch.bargain.ClientEvent
	(*JoinUserRoom)(nil),              // 18: mealmatch.bargain.JoinUserRoom
	(*JoinRestaurantRoom)(nil),        // 19: mealmatch.bargain.JoinRestaurantRoom
	(*JoinAdminRoom)(nil),             // 20: mealmatch.bargain.JoinAdminRoom
	(*NewBargain)(nil),                // 21: mealmatch.bargain.NewBargain
	(*BargainResponse)(nil),           // 22: mealmatch.bargain.BargainResponse
	(*AcceptCounter)(nil),             // 23: mealmatch.bargain.AcceptCounter
	(*ServerEvent)(nil),               // 24: mealmatch.bargain.ServerEvent
	(*BargainCreated)(nil),            // 25: mealmatch.bargain.BargainCreated
	(*BargainReceived)(nil),           // 26: mealmatch.bargain.BargainReceived
	(*BargainUpdate)(nil),             // 27: mealmatch.bargain.BargainUpdate
	(*ResponseSent)(nil),              // 28: mealmatch.bargain.ResponseSent
	(*BargainAccepted)(nil),           // 29: mealmatch.bargain.BargainAccepted
	(*CounterAccepted)(nil),           // 30: mealmatch.bargain.CounterAccepted
	(*BargainError)(nil),              // 31: mealmatch.bargain.BargainError
}
var file_proto_bargain_bargain_proto_depIdxs = []int32{
	13, // 0: mealmatch.bargain.BargainReply.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 1: mealmatch.bargain.BargainList.bargains:type_name -> mealmatch.bargain.BargainView
	15, // 2: mealmatch.bargain.OrderList.orders:type_name -> mealmatch.bargain.OrderView
	16, // 3: mealmatch.bargain.MealList.meals:type_name -> mealmatch.bargain.MealView
	14, // 4: mealmatch.bargain.OrderView.items:type_name -> mealmatch.bargain.OrderItemView
	18, // 5: mealmatch.bargain.ClientEvent.join_user_room:type_name -> mealmatch.bargain.JoinUserRoom
	19, // 6: mealmatch.bargain.ClientEvent.join_restaurant_room:type_name -> mealmatch.bargain.JoinRestaurantRoom
	20, // 7: mealmatch.bargain.ClientEvent.join_admin_room:type_name -> mealmatch.bargain.JoinAdminRoom
	21, // 8: mealmatch.bargain.ClientEvent.new_bargain:type_name -> mealmatch.bargain.NewBargain
	22, // 9: mealmatch.bargain.ClientEvent.bargain_response:type_name -> mealmatch.bargain.BargainResponse
	23, // 10: mealmatch.bargain.ClientEvent.accept_counter:type_name -> mealmatch.bargain.AcceptCounter
	25, // 11: mealmatch.bargain.ServerEvent.bargain_created:type_name -> mealmatch.bargain.BargainCreated
	26, // 12: mealmatch.bargain.ServerEvent.bargain_received:type_name -> mealmatch.bargain.BargainReceived
	27, // 13: mealmatch.bargain.ServerEvent.bargain_update:type_name -> mealmatch.bargain.BargainUpdate
	28, // 14: mealmatch.bargain.ServerEvent.response_sent:type_name -> mealmatch.bargain.ResponseSent
	29, // 15: mealmatch.bargain.ServerEvent.bargain_accepted:type_name -> mealmatch.bargain.BargainAccepted
	30, // 16: mealmatch.bargain.ServerEvent.counter_accepted:type_name -> mealmatch.bargain.CounterAccepted
	31, // 17: mealmatch.bargain.ServerEvent.bargain_error:type_name -> mealmatch.bargain.BargainError
	13, // 18: mealmatch.bargain.BargainCreated.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 19: mealmatch.bargain.BargainReceived.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 20: mealmatch.bargain.BargainUpdate.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 21: mealmatch.bargain.ResponseSent.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 22: mealmatch.bargain.BargainAccepted.bargain:type_name -> mealmatch.bargain.BargainView
	13, // 23: mealmatch.bargain.CounterAccepted.bargain:type_name -> mealmatch.bargain.BargainView
	0,  // 24: mealmatch.bargain.BargainService.CreateBargain:input_type -> mealmatch.bargain.CreateBargainRequest
	1,  // 25: mealmatch.bargain.BargainService.GetUserBargains:input_type -> mealmatch.bargain.UserBargainsRequest
	2,  // 26: mealmatch.bargain.BargainService.GetRestaurantBargains:input_type -> mealmatch.bargain.RestaurantBargainsRequest
	3,  // 27: mealmatch.bargain.BargainService.GetAllBargains:input_type -> mealmatch.bargain.AllBargainsRequest
	4,  // 28: mealmatch.bargain.BargainService.RespondToBargain:input_type -> mealmatch.bargain.RespondRequest
	5,  // 29: mealmatch.bargain.BargainService.RespondToCounter:input_type -> mealmatch.bargain.CounterDecisionRequest
	17, // 30: mealmatch.bargain.BargainService.Negotiate:input_type -> mealmatch.bargain.ClientEvent
	8,  // 31: mealmatch.bargain.OrderService.GetUserOrders:input_type -> mealmatch.bargain.UserOrdersRequest
	9,  // 32: mealmatch.bargain.OrderService.GetAllOrders:input_type -> mealmatch.bargain.AllOrdersRequest
	11, // 33: mealmatch.bargain.MealService.SearchMeals:input_type -> mealmatch.bargain.SearchMealsRequest
	6,  // 34: mealmatch.bargain.BargainService.CreateBargain:output_type -> mealmatch.bargain.BargainReply
	7,  // 35: mealmatch.bargain.BargainService.GetUserBargains:output_type -> mealmatch.bargain.BargainList
	7,  // 36: mealmatch.bargain.BargainService.GetRestaurantBargains:output_type -> mealmatch.bargain.BargainList
	7,  // 37: mealmatch.bargain.BargainService.GetAllBargains:output_type -> mealmatch.bargain.BargainList
	6,  // 38: mealmatch.bargain.BargainService.RespondToBargain:output_type -> mealmatch.bargain.BargainReply
	6,  // 39: mealmatch.bargain.BargainService.RespondToCounter:output_type -> mealmatch.bargain.BargainReply
	24, // 40: mealmatch.bargain.BargainService.Negotiate:output_type -> mealmatch.bargain.ServerEvent
	10, // 41: mealmatch.bargain.OrderService.GetUserOrders:output_type -> mealmatch.bargain.OrderList
	10, // 42: mealmatch.bargain.OrderService.GetAllOrders:output_type -> mealmatch.bargain.OrderList
	12, // 43: mealmatch.bargain.MealService.SearchMeals:output_type -> mealmatch.bargain.MealList
	34, // [34:44] is the sub-list for method output_type
	24, // [24:34] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_proto_bargain_bargain_proto_init() }
func file_proto_bargain_bargain_proto_init() {
	if File_proto_bargain_bargain_proto != nil {
		return
	}
	file_proto_bargain_bargain_proto_msgTypes[4].OneofWrappers = []any{}
	file_proto_bargain_bargain_proto_msgTypes[13].OneofWrappers = []any{}
	file_proto_bargain_bargain_proto_msgTypes[17].OneofWrappers = []any{
		(*ClientEvent_JoinUserRoom)(nil),
		(*ClientEvent_JoinRestaurantRoom)(nil),
		(*ClientEvent_JoinAdminRoom)(nil),
		(*ClientEvent_NewBargain)(nil),
		(*ClientEvent_BargainResponse)(nil),
		(*ClientEvent_AcceptCounter)(nil),
	}
	file_proto_bargain_bargain_proto_msgTypes[22].OneofWrappers = []any{}
	file_proto_bargain_bargain_proto_msgTypes[24].OneofWrappers = []any{
		(*ServerEvent_BargainCreated)(nil),
		(*ServerEvent_BargainReceived)(nil),
		(*ServerEvent_BargainUpdate)(nil),
		(*ServerEvent_ResponseSent)(nil),
		(*ServerEvent_BargainAccepted)(nil),
		(*ServerEvent_CounterAccepted)(nil),
		(*ServerEvent_BargainError)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_bargain_bargain_proto_rawDesc), len(file_proto_bargain_bargain_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_proto_bargain_bargain_proto_goTypes,
		DependencyIndexes: file_proto_bargain_bargain_proto_depIdxs,
		MessageInfos:      file_proto_bargain_bargain_proto_msgTypes,
	}.Build()
	File_proto_bargain_bargain_proto = out.File
	file_proto_bargain_bargain_proto_goTypes = nil
	file_proto_bargain_bargain_proto_depIdxs = nil
}
