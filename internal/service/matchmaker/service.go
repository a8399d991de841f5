package matchmaker

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/NissanXoX/LinkApp/internal/app"
	"github.com/NissanXoX/LinkApp/internal/cache"
	"github.com/NissanXoX/LinkApp/internal/config"
	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/deck"
	svcErr "github.com/NissanXoX/LinkApp/internal/errors"
	pb "github.com/NissanXoX/LinkApp/internal/proto/linkapp"
	"github.com/NissanXoX/LinkApp/internal/repository"
	"github.com/NissanXoX/LinkApp/internal/utils/pagination"
	"github.com/NissanXoX/LinkApp/internal/utils/pairkey"
)

const defaultThreadPageSize = 50

// Service implements the Matchmaker gRPC API: deck building, like/match
// bookkeeping, conversation access, and the chat-list aggregation. All
// coordination between concurrent callers happens through the stores —
// the service itself keeps no mutable state.
type Service struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	likes    *repository.LikeRepository
	matches  *repository.MatchRepository
	messages *repository.MessageRepository

	deckLimit   int
	placeholder string

	pb.UnimplementedMatchmakerServer
}

// NewMatchmakerService creates the service with dependencies from AppContext.
func NewMatchmakerService(appCtx *app.AppContext, cfg *config.Config) *Service {
	return &Service{
		appCtx:      appCtx,
		users:       repository.NewUserRepository(appCtx.DB),
		likes:       repository.NewLikeRepository(appCtx.DB),
		matches:     repository.NewMatchRepository(appCtx.DB),
		messages:    repository.NewMessageRepository(appCtx.DB),
		deckLimit:   cfg.App.DeckLimit,
		placeholder: cfg.App.ChatPlaceholder,
	}
}

// GetSwipeDeck returns the viewer's ranked candidate deck.
//
// The deck is derived fresh on every call from the profile catalog, the
// viewer's like ledger, and the match index — never cached, so a like or
// match recorded by another session is reflected on the next call.
func (s *Service) GetSwipeDeck(ctx context.Context, req *pb.GetSwipeDeckRequest) (*pb.GetSwipeDeckResponse, error) {
	s.appCtx.Logger.Debug("GetSwipeDeck called", "viewer", req.GetViewerUserId())

	viewerID, err := strconv.ParseUint(req.GetViewerUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("viewer_user_id must be a valid uint64")
	}

	viewer, err := s.users.Get(ctx, viewerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	all, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	liked, err := s.likes.LikedIDs(ctx, viewerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	matched, err := s.matches.MatchedIDs(ctx, viewerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = s.deckLimit
	}

	resp := &pb.GetSwipeDeckResponse{}
	for _, sp := range deck.Build(viewer, all, liked, matched, limit) {
		resp.Profiles = append(resp.Profiles, &pb.ScoredProfile{
			Profile: toProfile(sp.User),
			Score:   int32(sp.Score),
		})
	}

	s.appCtx.Logger.Debug("GetSwipeDeck result", "viewer", viewerID, "deck_size", len(resp.Profiles))
	return resp, nil
}

// PutLike records a directional like and detects mutual interest.
//
// The like upsert is idempotent. When the reciprocal like already exists,
// the match is created at the deterministic pair key with create-if-absent
// semantics: under a simultaneous mutual swipe both callers reach this
// point, exactly one insert wins, and only the winner publishes the
// match-formed event. Both callers still report matched=true — the match
// exists either way.
func (s *Service) PutLike(ctx context.Context, req *pb.PutLikeRequest) (*pb.PutLikeResponse, error) {
	s.appCtx.Logger.Debug(
		"PutLike called",
		"actor", req.GetActorUserId(),
		"recipient", req.GetRecipientUserId(),
	)

	actorID, err := strconv.ParseUint(req.GetActorUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}
	if actorID == recipientID {
		return nil, svcErr.InvalidArgument("cannot like yourself")
	}

	recipient, err := s.users.Get(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	already, err := s.likes.HasLike(ctx, actorID, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.likes.RecordLike(ctx, actorID, recipientID); err != nil {
		return nil, svcErr.Map(err)
	}

	// liked-you counter cache: only a first-time like counts
	if !already {
		_ = s.appCtx.RedisCache.IncrLikeCount(ctx, recipientID)
	}

	mutual, err := s.likes.HasLike(ctx, recipientID, actorID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !mutual {
		return &pb.PutLikeResponse{Matched: false}, nil
	}

	created, match, err := s.matches.CreateIfAbsent(ctx, actorID, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if created {
		s.appCtx.Logger.Info("match formed", "pair", match.PairKey)
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, actorID, cache.EventMatchFormed)
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, recipientID, cache.EventMatchFormed)
	}

	return &pb.PutLikeResponse{
		Matched:        true,
		MatchedProfile: toProfile(recipient),
	}, nil
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. If cache miss or parse error, falls back to DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", req.GetRecipientUserId())

	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	// try cache first
	if n, found, err := s.appCtx.RedisCache.GetLikeCount(ctx, recipientID); err == nil && found {
		return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
	}

	// fallback: DB
	count, err := s.likes.CountLikers(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.UpdateLikeCount(ctx, recipientID, count)

	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

// GetChatList derives the viewer's chat list from the match index and
// each conversation's latest message. Per-entry failures (a profile that
// can no longer be resolved) are skipped and logged instead of failing the
// whole list — a partial view beats an empty one.
func (s *Service) GetChatList(ctx context.Context, req *pb.GetChatListRequest) (*pb.GetChatListResponse, error) {
	s.appCtx.Logger.Debug("GetChatList called", "viewer", req.GetViewerUserId())

	viewerID, err := strconv.ParseUint(req.GetViewerUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("viewer_user_id must be a valid uint64")
	}

	return s.chatListSnapshot(ctx, viewerID)
}

// chatListSnapshot builds the full aggregated chat list for a viewer.
// Shared by GetChatList and WatchChatList.
func (s *Service) chatListSnapshot(ctx context.Context, viewerID uint64) (*pb.GetChatListResponse, error) {
	matches, err := s.matches.ListForUser(ctx, viewerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	type entry struct {
		preview  *pb.ChatPreview
		hasMsg   bool
		sortUnix int64
	}

	entries := make([]entry, 0, len(matches))
	for _, m := range matches {
		otherID, ok := pairkey.Other(m.PairKey, viewerID)
		if !ok {
			s.appCtx.Logger.Warn("match row with malformed pair key", "pair", m.PairKey)
			continue
		}

		other, err := s.users.Get(ctx, otherID)
		if err != nil {
			// profile unavailable: skip the entry, keep the rest of the list
			s.appCtx.Logger.Warn("skipping chat entry, profile unavailable", "user", otherID, "err", err)
			continue
		}

		latest, err := s.messages.Latest(ctx, m.PairKey)
		if err != nil {
			s.appCtx.Logger.Warn("skipping chat entry, latest message unavailable", "pair", m.PairKey, "err", err)
			continue
		}

		preview := &pb.ChatPreview{
			PairKey: m.PairKey,
			Profile: toProfile(other),
		}
		e := entry{preview: preview}
		if latest != nil {
			text := latest.Text
			if latest.SenderID == viewerID {
				text = "You: " + text
			}
			preview.LastMessageText = text
			preview.LastSenderUserId = strconv.FormatUint(latest.SenderID, 10)
			preview.LastSentAt = timestamppb.New(latest.SentAt)
			preview.Unread = latest.SenderID != viewerID && !latest.Seen
			e.hasMsg = true
			e.sortUnix = latest.SentAt.UnixMilli()
		} else {
			preview.LastMessageText = s.placeholder
			e.sortUnix = m.CreatedAt.UnixMilli()
		}
		entries = append(entries, e)
	}

	// Active conversations first, newest message on top. Empty conversations
	// trail the list, ordered by match creation so they keep a stable spot.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].hasMsg != entries[j].hasMsg {
			return entries[i].hasMsg
		}
		return entries[i].sortUnix > entries[j].sortUnix
	})

	resp := &pb.GetChatListResponse{}
	for _, e := range entries {
		resp.Previews = append(resp.Previews, e.preview)
	}
	return resp, nil
}

// GetThread returns one ascending page of a conversation.
func (s *Service) GetThread(ctx context.Context, req *pb.GetThreadRequest) (*pb.GetThreadResponse, error) {
	s.appCtx.Logger.Debug("GetThread called", "pair", req.GetPairKey(), "token", req.GetPageToken())

	if _, err := s.matches.Get(ctx, req.GetPairKey()); err != nil {
		return nil, svcErr.Map(err)
	}

	pageSize := int(req.GetPageSize())
	if pageSize <= 0 {
		pageSize = defaultThreadPageSize
	}

	var token *string
	if t := req.GetPageToken(); t != "" {
		token = &t
	}

	msgs, nextToken, err := s.messages.ListPage(ctx, req.GetPairKey(), token, pageSize)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, svcErr.InvalidArgument("page_token is not a valid cursor")
		}
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetThreadResponse{}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, toChatMessage(m))
	}
	if nextToken != nil {
		resp.NextPageToken = *nextToken
	}
	return resp, nil
}

// SendMessage appends to a match's conversation. The sender must be one of
// the match participants, the match must exist, and the text must be
// non-empty after trimming.
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug("SendMessage called", "pair", req.GetPairKey(), "sender", req.GetSenderUserId())

	senderID, err := strconv.ParseUint(req.GetSenderUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("sender_user_id must be a valid uint64")
	}

	if _, err := s.matches.Get(ctx, req.GetPairKey()); err != nil {
		return nil, svcErr.Map(err)
	}
	recipientID, ok := pairkey.Other(req.GetPairKey(), senderID)
	if !ok {
		return nil, svcErr.FailedPrecondition("sender is not a participant of this match")
	}

	msg, err := s.messages.Append(ctx, req.GetPairKey(), senderID, req.GetText())
	if err != nil {
		if errors.Is(err, repository.ErrEmptyText) {
			return nil, svcErr.InvalidArgument("message text must not be empty")
		}
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.PublishConversationEvent(ctx, req.GetPairKey(), cache.EventMessage)
	_ = s.appCtx.RedisCache.PublishUserEvent(ctx, recipientID, cache.EventMessage)
	_ = s.appCtx.RedisCache.PublishUserEvent(ctx, senderID, cache.EventMessage)

	return &pb.SendMessageResponse{Message: toChatMessage(msg)}, nil
}

// MarkRead flips one message's seen flag. The transition is one-way; a
// repeat call is a no-op success.
func (s *Service) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	s.appCtx.Logger.Debug("MarkRead called", "pair", req.GetPairKey(), "message", req.GetMessageId())

	if _, err := s.matches.Get(ctx, req.GetPairKey()); err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.messages.MarkSeen(ctx, req.GetPairKey(), req.GetMessageId()); err != nil {
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.PublishConversationEvent(ctx, req.GetPairKey(), cache.EventSeen)
	if a, b, err := pairkey.Split(req.GetPairKey()); err == nil {
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, a, cache.EventSeen)
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, b, cache.EventSeen)
	}

	return &pb.MarkReadResponse{}, nil
}

// Unmatch dissolves the match between two users and wipes their
// conversation. The conversation goes first: a reader racing this call may
// observe "match gone, thread gone" but never an orphaned thread. Both
// deletes are idempotent, so a repeat call is a clean no-op. Like records
// are retained, which keeps the pair out of each other's future decks.
func (s *Service) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.UnmatchResponse, error) {
	s.appCtx.Logger.Debug("Unmatch called", "user_a", req.GetUserAId(), "user_b", req.GetUserBId())

	aID, err := strconv.ParseUint(req.GetUserAId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_a_id must be a valid uint64")
	}
	bID, err := strconv.ParseUint(req.GetUserBId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_b_id must be a valid uint64")
	}
	if aID == bID {
		return nil, svcErr.InvalidArgument("cannot unmatch yourself")
	}

	key := pairkey.For(aID, bID)

	if err := s.messages.DeleteConversation(ctx, key); err != nil {
		return nil, svcErr.Map(err)
	}
	removed, err := s.matches.Delete(ctx, key)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if removed {
		s.appCtx.Logger.Info("match dissolved", "pair", key)
		_ = s.appCtx.RedisCache.PublishConversationEvent(ctx, key, cache.EventUnmatch)
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, aID, cache.EventUnmatch)
		_ = s.appCtx.RedisCache.PublishUserEvent(ctx, bID, cache.EventUnmatch)
	}

	return &pb.UnmatchResponse{}, nil
}

// WatchThread streams full-thread snapshots: one immediately, then a fresh
// one after every conversation event. The stream ends when the consumer
// cancels or the match is dissolved; teardown never touches in-flight
// writes.
func (s *Service) WatchThread(req *pb.WatchThreadRequest, stream pb.Matchmaker_WatchThreadServer) error {
	ctx := stream.Context()

	if _, err := s.matches.Get(ctx, req.GetPairKey()); err != nil {
		return svcErr.Map(err)
	}

	sub := s.appCtx.RedisCache.SubscribeConversationEvents(ctx, req.GetPairKey())
	defer func() { _ = sub.Close() }()

	send := func() error {
		msgs, err := s.messages.ListOrdered(ctx, req.GetPairKey())
		if err != nil {
			return svcErr.Map(err)
		}
		resp := &pb.GetThreadResponse{}
		for _, m := range msgs {
			resp.Messages = append(resp.Messages, toChatMessage(m))
		}
		return stream.Send(resp)
	}

	if err := send(); err != nil {
		return err
	}

	events := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := send(); err != nil {
				return err
			}
			if ev.Payload == cache.EventUnmatch {
				return nil
			}
		}
	}
}

// WatchChatList streams chat-list snapshots for a viewer, re-aggregated
// after every event on the viewer's channel.
func (s *Service) WatchChatList(req *pb.WatchChatListRequest, stream pb.Matchmaker_WatchChatListServer) error {
	ctx := stream.Context()

	viewerID, err := strconv.ParseUint(req.GetViewerUserId(), 10, 64)
	if err != nil {
		return svcErr.InvalidArgument("viewer_user_id must be a valid uint64")
	}

	sub := s.appCtx.RedisCache.SubscribeUserEvents(ctx, viewerID)
	defer func() { _ = sub.Close() }()

	send := func() error {
		resp, err := s.chatListSnapshot(ctx, viewerID)
		if err != nil {
			return err
		}
		return stream.Send(resp)
	}

	if err := send(); err != nil {
		return err
	}

	events := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := send(); err != nil {
				return err
			}
		}
	}
}

// --- mapping helpers ---

func toProfile(u db.User) *pb.Profile {
	return &pb.Profile{
		UserId:       strconv.FormatUint(u.ID, 10),
		Name:         u.Name,
		Age:          int32(u.Age),
		Gender:       u.Gender,
		InterestedIn: u.InterestedIn,
		Bio:          u.Bio,
		Hobbies:      u.Hobbies,
		ImageUrl:     u.ImageURL,
		Preference:   u.Preference,
	}
}

func toChatMessage(m db.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		Id:           m.ID,
		PairKey:      m.PairKey,
		SenderUserId: strconv.FormatUint(m.SenderID, 10),
		Text:         m.Text,
		SentAt:       timestamppb.New(m.SentAt),
		Seen:         m.Seen,
	}
}
