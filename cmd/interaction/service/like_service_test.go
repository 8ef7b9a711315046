package service

import (
	"context"
	"sync"
	"testing"

	"VideoTube.com/pkg/errno"
)

func newTestLikeService(store *memoryEngagementStore) *LikeActionService {
	return &LikeActionService{
		ctx:    context.Background(),
		store:  store,
		cache:  newMemoryLikeCache(),
		locker: newMemoryLocker(),
	}
}

func TestLikeActionToggle(t *testing.T) {
	store := newMemoryEngagementStore()
	store.addVideo(1)
	svc := newTestLikeService(store)

	t.Run("TestFirstToggleLikes", func(t *testing.T) {
		liked, count, err := svc.LikeAction(1, 100)
		if err != nil {
			t.Fatalf("LikeAction failed: %v", err)
		}
		if !liked || count != 1 {
			t.Errorf("expected liked=true count=1, got liked=%v count=%d", liked, count)
		}
	})

	t.Run("TestSecondToggleUnlikes", func(t *testing.T) {
		liked, count, err := svc.LikeAction(1, 100)
		if err != nil {
			t.Fatalf("LikeAction failed: %v", err)
		}
		if liked || count != 0 {
			t.Errorf("expected liked=false count=0, got liked=%v count=%d", liked, count)
		}
	})

	t.Run("TestOddEvenParity", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			if _, _, err := svc.LikeAction(1, 200); err != nil {
				t.Fatalf("LikeAction failed: %v", err)
			}
		}
		isLiked, _ := store.IsVideoLikedByUser(context.Background(), 1, 200)
		if !isLiked {
			t.Error("after an odd number of toggles the user should be in the like-set")
		}
		for i := 0; i < 5; i++ {
			if _, _, err := svc.LikeAction(1, 300); err != nil {
				t.Fatalf("LikeAction failed: %v", err)
			}
		}
		if _, _, err := svc.LikeAction(1, 300); err != nil {
			t.Fatalf("LikeAction failed: %v", err)
		}
		isLiked, _ = store.IsVideoLikedByUser(context.Background(), 1, 300)
		if isLiked {
			t.Error("after an even number of toggles the user should not be in the like-set")
		}
	})

	t.Run("TestCountMatchesSetSize", func(t *testing.T) {
		_, count, err := svc.LikeAction(1, 400)
		if err != nil {
			t.Fatalf("LikeAction failed: %v", err)
		}
		setSize, _ := store.GetVideoLikeCount(context.Background(), 1)
		if count != setSize {
			t.Errorf("returned count %d must equal like-set size %d", count, setSize)
		}
	})
}

func TestLikeActionVideoNotFound(t *testing.T) {
	svc := newTestLikeService(newMemoryEngagementStore())
	_, _, err := svc.LikeAction(999, 100)
	if errno.ConvertErr(err).ErrCode != errno.VideoNotFoundErrCode {
		t.Errorf("expected VideoNotFoundErr, got %v", err)
	}
}

// Toggles by different users on the same video must all apply.
func TestConcurrentLikesDifferentUsers(t *testing.T) {
	store := newMemoryEngagementStore()
	store.addVideo(1)
	svc := newTestLikeService(store)

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userId int64) {
			defer wg.Done()
			if _, _, err := svc.LikeAction(1, userId); err != nil {
				t.Errorf("LikeAction failed: %v", err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	count, _ := store.GetVideoLikeCount(context.Background(), 1)
	if count != n {
		t.Errorf("expected %d likes with no lost updates, got %d", n, count)
	}
}

// An even number of concurrent toggles by one user must cancel out, and each
// call's returned count must be consistent with a serialized execution.
func TestConcurrentTogglesSameUser(t *testing.T) {
	store := newMemoryEngagementStore()
	store.addVideo(1)
	svc := newTestLikeService(store)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := svc.LikeAction(1, 7); err != nil {
				t.Errorf("LikeAction failed: %v", err)
			}
		}()
	}
	wg.Wait()

	isLiked, _ := store.IsVideoLikedByUser(context.Background(), 1, 7)
	if isLiked {
		t.Error("even number of toggles should leave the user out of the like-set")
	}
	count, _ := store.GetVideoLikeCount(context.Background(), 1)
	if count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
}

// Different videos use different locks, so this must not serialize, only
// produce correct per-video results.
func TestConcurrentLikesDifferentVideos(t *testing.T) {
	store := newMemoryEngagementStore()
	store.addVideo(1)
	store.addVideo(2)
	svc := newTestLikeService(store)

	var wg sync.WaitGroup
	for v := int64(1); v <= 2; v++ {
		for u := int64(1); u <= 8; u++ {
			wg.Add(1)
			go func(videoId, userId int64) {
				defer wg.Done()
				if _, _, err := svc.LikeAction(videoId, userId); err != nil {
					t.Errorf("LikeAction failed: %v", err)
				}
			}(v, u)
		}
	}
	wg.Wait()

	for v := int64(1); v <= 2; v++ {
		count, _ := store.GetVideoLikeCount(context.Background(), v)
		if count != 8 {
			t.Errorf("video %d: expected 8 likes, got %d", v, count)
		}
	}
}

// A read that misses the cache, captures the pre-toggle count, and finishes
// after a concurrent toggle must not clobber the toggle's cached count: the
// key would hold the stale value until the TTL and the liker's next read
// would not see their own like.
func TestSlowReadKeepsToggledCountCached(t *testing.T) {
	store := newGatedCountStore(newMemoryEngagementStore())
	store.addVideo(1)
	cache := newMemoryLikeCache()

	likeSvc := &LikeActionService{
		ctx:    context.Background(),
		store:  store,
		cache:  cache,
		locker: newMemoryLocker(),
	}
	query := &EngagementQueryService{ctx: context.Background(), store: store, cache: cache}

	done := make(chan *EngagementInfo, 1)
	go func() {
		info, err := query.GetEngagement(1)
		if err != nil {
			t.Errorf("GetEngagement failed: %v", err)
		}
		done <- info
	}()

	// The reader is now stalled holding the count from before the like.
	<-store.entered

	liked, count, err := likeSvc.LikeAction(1, 100)
	if err != nil {
		t.Fatalf("LikeAction failed: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("expected liked=true count=1, got liked=%v count=%d", liked, count)
	}

	close(store.release)
	stale := <-done
	if stale != nil && stale.LikeCount != 0 {
		t.Errorf("slow read should return its pre-toggle count 0, got %d", stale.LikeCount)
	}

	cached, ok, err := cache.GetVideoLikeCount(context.Background(), 1)
	if err != nil {
		t.Fatalf("cache read failed: %v", err)
	}
	if !ok || cached != 1 {
		t.Errorf("cache should still hold the toggled count 1, got %d (present=%v)", cached, ok)
	}

	info, err := query.GetEngagement(1)
	if err != nil {
		t.Fatalf("GetEngagement failed: %v", err)
	}
	if info.LikeCount != 1 || len(info.LikedBy) != 1 {
		t.Errorf("liker's next read must see their like: count=%d likedBy=%v", info.LikeCount, info.LikedBy)
	}
}
