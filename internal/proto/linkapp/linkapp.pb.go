// Hand-maintained bindings for linkapp.proto. The structs follow the wire
// schema via their protobuf struct tags (picked up by the protobuf runtime's
// legacy message support); keep field numbers in sync with the .proto file.
package linkapp

import (
	"google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

func messageString(m interface{}) string {
	return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(m))
}

type Profile struct {
	UserId       string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name         string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Age          int32  `protobuf:"varint,3,opt,name=age,proto3" json:"age,omitempty"`
	Gender       string `protobuf:"bytes,4,opt,name=gender,proto3" json:"gender,omitempty"`
	InterestedIn string `protobuf:"bytes,5,opt,name=interested_in,json=interestedIn,proto3" json:"interested_in,omitempty"`
	Bio          string `protobuf:"bytes,6,opt,name=bio,proto3" json:"bio,omitempty"`
	Hobbies      string `protobuf:"bytes,7,opt,name=hobbies,proto3" json:"hobbies,omitempty"`
	ImageUrl     string `protobuf:"bytes,8,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	Preference   string `protobuf:"bytes,9,opt,name=preference,proto3" json:"preference,omitempty"`
}

func (m *Profile) Reset()         { *m = Profile{} }
func (m *Profile) String() string { return messageString(m) }
func (*Profile) ProtoMessage()    {}

func (m *Profile) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *Profile) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Profile) GetAge() int32 {
	if m != nil {
		return m.Age
	}
	return 0
}

func (m *Profile) GetGender() string {
	if m != nil {
		return m.Gender
	}
	return ""
}

func (m *Profile) GetInterestedIn() string {
	if m != nil {
		return m.InterestedIn
	}
	return ""
}

func (m *Profile) GetBio() string {
	if m != nil {
		return m.Bio
	}
	return ""
}

func (m *Profile) GetHobbies() string {
	if m != nil {
		return m.Hobbies
	}
	return ""
}

func (m *Profile) GetImageUrl() string {
	if m != nil {
		return m.ImageUrl
	}
	return ""
}

func (m *Profile) GetPreference() string {
	if m != nil {
		return m.Preference
	}
	return ""
}

type ScoredProfile struct {
	Profile *Profile `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	Score   int32    `protobuf:"varint,2,opt,name=score,proto3" json:"score,omitempty"`
}

func (m *ScoredProfile) Reset()         { *m = ScoredProfile{} }
func (m *ScoredProfile) String() string { return messageString(m) }
func (*ScoredProfile) ProtoMessage()    {}

func (m *ScoredProfile) GetProfile() *Profile {
	if m != nil {
		return m.Profile
	}
	return nil
}

func (m *ScoredProfile) GetScore() int32 {
	if m != nil {
		return m.Score
	}
	return 0
}

type GetSwipeDeckRequest struct {
	ViewerUserId string `protobuf:"bytes,1,opt,name=viewer_user_id,json=viewerUserId,proto3" json:"viewer_user_id,omitempty"`
	Limit        int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetSwipeDeckRequest) Reset()         { *m = GetSwipeDeckRequest{} }
func (m *GetSwipeDeckRequest) String() string { return messageString(m) }
func (*GetSwipeDeckRequest) ProtoMessage()    {}

func (m *GetSwipeDeckRequest) GetViewerUserId() string {
	if m != nil {
		return m.ViewerUserId
	}
	return ""
}

func (m *GetSwipeDeckRequest) GetLimit() int32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type GetSwipeDeckResponse struct {
	Profiles []*ScoredProfile `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
}

func (m *GetSwipeDeckResponse) Reset()         { *m = GetSwipeDeckResponse{} }
func (m *GetSwipeDeckResponse) String() string { return messageString(m) }
func (*GetSwipeDeckResponse) ProtoMessage()    {}

func (m *GetSwipeDeckResponse) GetProfiles() []*ScoredProfile {
	if m != nil {
		return m.Profiles
	}
	return nil
}

type PutLikeRequest struct {
	ActorUserId     string `protobuf:"bytes,1,opt,name=actor_user_id,json=actorUserId,proto3" json:"actor_user_id,omitempty"`
	RecipientUserId string `protobuf:"bytes,2,opt,name=recipient_user_id,json=recipientUserId,proto3" json:"recipient_user_id,omitempty"`
}

func (m *PutLikeRequest) Reset()         { *m = PutLikeRequest{} }
func (m *PutLikeRequest) String() string { return messageString(m) }
func (*PutLikeRequest) ProtoMessage()    {}

func (m *PutLikeRequest) GetActorUserId() string {
	if m != nil {
		return m.ActorUserId
	}
	return ""
}

func (m *PutLikeRequest) GetRecipientUserId() string {
	if m != nil {
		return m.RecipientUserId
	}
	return ""
}

type PutLikeResponse struct {
	Matched        bool     `protobuf:"varint,1,opt,name=matched,proto3" json:"matched,omitempty"`
	MatchedProfile *Profile `protobuf:"bytes,2,opt,name=matched_profile,json=matchedProfile,proto3" json:"matched_profile,omitempty"`
}

func (m *PutLikeResponse) Reset()         { *m = PutLikeResponse{} }
func (m *PutLikeResponse) String() string { return messageString(m) }
func (*PutLikeResponse) ProtoMessage()    {}

func (m *PutLikeResponse) GetMatched() bool {
	if m != nil {
		return m.Matched
	}
	return false
}

func (m *PutLikeResponse) GetMatchedProfile() *Profile {
	if m != nil {
		return m.MatchedProfile
	}
	return nil
}

type CountLikedYouRequest struct {
	RecipientUserId string `protobuf:"bytes,1,opt,name=recipient_user_id,json=recipientUserId,proto3" json:"recipient_user_id,omitempty"`
}

func (m *CountLikedYouRequest) Reset()         { *m = CountLikedYouRequest{} }
func (m *CountLikedYouRequest) String() string { return messageString(m) }
func (*CountLikedYouRequest) ProtoMessage()    {}

func (m *CountLikedYouRequest) GetRecipientUserId() string {
	if m != nil {
		return m.RecipientUserId
	}
	return ""
}

type CountLikedYouResponse struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *CountLikedYouResponse) Reset()         { *m = CountLikedYouResponse{} }
func (m *CountLikedYouResponse) String() string { return messageString(m) }
func (*CountLikedYouResponse) ProtoMessage()    {}

func (m *CountLikedYouResponse) GetCount() uint64 {
	if m != nil {
		return m.Count
	}
	return 0
}

type ChatMessage struct {
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PairKey      string                 `protobuf:"bytes,2,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
	SenderUserId string                 `protobuf:"bytes,3,opt,name=sender_user_id,json=senderUserId,proto3" json:"sender_user_id,omitempty"`
	Text         string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	SentAt       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=sent_at,json=sentAt,proto3" json:"sent_at,omitempty"`
	Seen         bool                   `protobuf:"varint,6,opt,name=seen,proto3" json:"seen,omitempty"`
}

func (m *ChatMessage) Reset()         { *m = ChatMessage{} }
func (m *ChatMessage) String() string { return messageString(m) }
func (*ChatMessage) ProtoMessage()    {}

func (m *ChatMessage) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *ChatMessage) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

func (m *ChatMessage) GetSenderUserId() string {
	if m != nil {
		return m.SenderUserId
	}
	return ""
}

func (m *ChatMessage) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *ChatMessage) GetSentAt() *timestamppb.Timestamp {
	if m != nil {
		return m.SentAt
	}
	return nil
}

func (m *ChatMessage) GetSeen() bool {
	if m != nil {
		return m.Seen
	}
	return false
}

type ChatPreview struct {
	PairKey          string                 `protobuf:"bytes,1,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
	Profile          *Profile               `protobuf:"bytes,2,opt,name=profile,proto3" json:"profile,omitempty"`
	LastMessageText  string                 `protobuf:"bytes,3,opt,name=last_message_text,json=lastMessageText,proto3" json:"last_message_text,omitempty"`
	LastSenderUserId string                 `protobuf:"bytes,4,opt,name=last_sender_user_id,json=lastSenderUserId,proto3" json:"last_sender_user_id,omitempty"`
	LastSentAt       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=last_sent_at,json=lastSentAt,proto3" json:"last_sent_at,omitempty"`
	Unread           bool                   `protobuf:"varint,6,opt,name=unread,proto3" json:"unread,omitempty"`
}

func (m *ChatPreview) Reset()         { *m = ChatPreview{} }
func (m *ChatPreview) String() string { return messageString(m) }
func (*ChatPreview) ProtoMessage()    {}

func (m *ChatPreview) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

func (m *ChatPreview) GetProfile() *Profile {
	if m != nil {
		return m.Profile
	}
	return nil
}

func (m *ChatPreview) GetLastMessageText() string {
	if m != nil {
		return m.LastMessageText
	}
	return ""
}

func (m *ChatPreview) GetLastSenderUserId() string {
	if m != nil {
		return m.LastSenderUserId
	}
	return ""
}

func (m *ChatPreview) GetLastSentAt() *timestamppb.Timestamp {
	if m != nil {
		return m.LastSentAt
	}
	return nil
}

func (m *ChatPreview) GetUnread() bool {
	if m != nil {
		return m.Unread
	}
	return false
}

type GetChatListRequest struct {
	ViewerUserId string `protobuf:"bytes,1,opt,name=viewer_user_id,json=viewerUserId,proto3" json:"viewer_user_id,omitempty"`
}

func (m *GetChatListRequest) Reset()         { *m = GetChatListRequest{} }
func (m *GetChatListRequest) String() string { return messageString(m) }
func (*GetChatListRequest) ProtoMessage()    {}

func (m *GetChatListRequest) GetViewerUserId() string {
	if m != nil {
		return m.ViewerUserId
	}
	return ""
}

type GetChatListResponse struct {
	Previews []*ChatPreview `protobuf:"bytes,1,rep,name=previews,proto3" json:"previews,omitempty"`
}

func (m *GetChatListResponse) Reset()         { *m = GetChatListResponse{} }
func (m *GetChatListResponse) String() string { return messageString(m) }
func (*GetChatListResponse) ProtoMessage()    {}

func (m *GetChatListResponse) GetPreviews() []*ChatPreview {
	if m != nil {
		return m.Previews
	}
	return nil
}

type GetThreadRequest struct {
	PairKey   string `protobuf:"bytes,1,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	PageSize  int32  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
}

func (m *GetThreadRequest) Reset()         { *m = GetThreadRequest{} }
func (m *GetThreadRequest) String() string { return messageString(m) }
func (*GetThreadRequest) ProtoMessage()    {}

func (m *GetThreadRequest) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

func (m *GetThreadRequest) GetPageToken() string {
	if m != nil {
		return m.PageToken
	}
	return ""
}

func (m *GetThreadRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

type GetThreadResponse struct {
	Messages      []*ChatMessage `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	NextPageToken string         `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *GetThreadResponse) Reset()         { *m = GetThreadResponse{} }
func (m *GetThreadResponse) String() string { return messageString(m) }
func (*GetThreadResponse) ProtoMessage()    {}

func (m *GetThreadResponse) GetMessages() []*ChatMessage {
	if m != nil {
		return m.Messages
	}
	return nil
}

func (m *GetThreadResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type SendMessageRequest struct {
	PairKey      string `protobuf:"bytes,1,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
	SenderUserId string `protobuf:"bytes,2,opt,name=sender_user_id,json=senderUserId,proto3" json:"sender_user_id,omitempty"`
	Text         string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *SendMessageRequest) Reset()         { *m = SendMessageRequest{} }
func (m *SendMessageRequest) String() string { return messageString(m) }
func (*SendMessageRequest) ProtoMessage()    {}

func (m *SendMessageRequest) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

func (m *SendMessageRequest) GetSenderUserId() string {
	if m != nil {
		return m.SenderUserId
	}
	return ""
}

func (m *SendMessageRequest) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

type SendMessageResponse struct {
	Message *ChatMessage `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *SendMessageResponse) Reset()         { *m = SendMessageResponse{} }
func (m *SendMessageResponse) String() string { return messageString(m) }
func (*SendMessageResponse) ProtoMessage()    {}

func (m *SendMessageResponse) GetMessage() *ChatMessage {
	if m != nil {
		return m.Message
	}
	return nil
}

type MarkReadRequest struct {
	PairKey   string `protobuf:"bytes,1,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
	MessageId string `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
}

func (m *MarkReadRequest) Reset()         { *m = MarkReadRequest{} }
func (m *MarkReadRequest) String() string { return messageString(m) }
func (*MarkReadRequest) ProtoMessage()    {}

func (m *MarkReadRequest) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

func (m *MarkReadRequest) GetMessageId() string {
	if m != nil {
		return m.MessageId
	}
	return ""
}

type MarkReadResponse struct{}

func (m *MarkReadResponse) Reset()         { *m = MarkReadResponse{} }
func (m *MarkReadResponse) String() string { return messageString(m) }
func (*MarkReadResponse) ProtoMessage()    {}

type UnmatchRequest struct {
	UserAId string `protobuf:"bytes,1,opt,name=user_a_id,json=userAId,proto3" json:"user_a_id,omitempty"`
	UserBId string `protobuf:"bytes,2,opt,name=user_b_id,json=userBId,proto3" json:"user_b_id,omitempty"`
}

func (m *UnmatchRequest) Reset()         { *m = UnmatchRequest{} }
func (m *UnmatchRequest) String() string { return messageString(m) }
func (*UnmatchRequest) ProtoMessage()    {}

func (m *UnmatchRequest) GetUserAId() string {
	if m != nil {
		return m.UserAId
	}
	return ""
}

func (m *UnmatchRequest) GetUserBId() string {
	if m != nil {
		return m.UserBId
	}
	return ""
}

type UnmatchResponse struct{}

func (m *UnmatchResponse) Reset()         { *m = UnmatchResponse{} }
func (m *UnmatchResponse) String() string { return messageString(m) }
func (*UnmatchResponse) ProtoMessage()    {}

type WatchThreadRequest struct {
	PairKey string `protobuf:"bytes,1,opt,name=pair_key,json=pairKey,proto3" json:"pair_key,omitempty"`
}

func (m *WatchThreadRequest) Reset()         { *m = WatchThreadRequest{} }
func (m *WatchThreadRequest) String() string { return messageString(m) }
func (*WatchThreadRequest) ProtoMessage()    {}

func (m *WatchThreadRequest) GetPairKey() string {
	if m != nil {
		return m.PairKey
	}
	return ""
}

type WatchChatListRequest struct {
	ViewerUserId string `protobuf:"bytes,1,opt,name=viewer_user_id,json=viewerUserId,proto3" json:"viewer_user_id,omitempty"`
}

func (m *WatchChatListRequest) Reset()         { *m = WatchChatListRequest{} }
func (m *WatchChatListRequest) String() string { return messageString(m) }
func (*WatchChatListRequest) ProtoMessage()    {}

func (m *WatchChatListRequest) GetViewerUserId() string {
	if m != nil {
		return m.ViewerUserId
	}
	return ""
}
